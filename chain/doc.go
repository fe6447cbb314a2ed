// Package chain implements the stacked-backend overlay engine (spec §4.5):
// an ordered sequence of storage.Format members where reads resolve
// last-writer-wins, writes always target the tail member, and deletion is
// blocked when an earlier member still holds the artifact.
package chain
