// Package query implements the pipeline expression language and the
// process-wide operation registry it draws from (spec §4.7): a
// selector chosen from a dataset, piped through zero or more
// projections, slices, element-wise operations, and reductions.
package query
