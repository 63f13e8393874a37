// Package dfs provides common helper functions used by cycle enumeration.
// These utilities offer int-slice operations and vertex-set signatures.
package dfs

import (
	"sort"
	"strconv"
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig concatenates the elements of c with commas, producing a single string signature.
// Time Complexity: O(n).
func JoinSig(c []int) string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// SetSignature returns the signature of the vertex *set* of c: duplicates are
// dropped and the remaining vertices are sorted ascending, so every walk over
// the same vertices maps to the same key.
// Time Complexity: O(n log n).
func SetSignature(c []int) string {
	set := append([]int(nil), c...)
	sort.Ints(set)
	uniq := set[:0]
	for _, v := range set {
		if len(uniq) == 0 || v != uniq[len(uniq)-1] {
			uniq = append(uniq, v)
		}
	}

	return JoinSig(uniq)
}
