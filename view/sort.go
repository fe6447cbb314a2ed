package view

import "sort"

func sortedCopy(names []string) []string {
	sort.Strings(names)
	return names
}
