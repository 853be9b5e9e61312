package util

import (
	"slices"
	"sort"

	"github.com/xtgo/set"
)

// StringsDiff returns the sorted, de-duplicated elements of a that are not in b
func StringsDiff(a, b []string) []string {
	fst := sortedUniq(a)
	snd := sortedUniq(b)
	data := append(fst, snd...)
	size := set.Diff(sort.StringSlice(data), len(fst))
	return append(make([]string, 0, size), data[:size]...)
}

func sortedUniq(s []string) []string {
	out := slices.Clone(s)
	sort.Strings(out)
	return out[:set.Uniq(sort.StringSlice(out))]
}
