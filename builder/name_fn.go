// SPDX-License-Identifier: MIT
// Package: mincost/builder

package builder

import (
	"fmt"
	"strconv"
)

// NameFn generates a region label from its zero-based index.
// It must be pure: the same idx always yields the same name.
type NameFn func(idx int) string

// DefaultNameFn returns "R" followed by the decimal index, e.g. 0→"R0".
func DefaultNameFn(idx int) string {
	return "R" + strconv.Itoa(idx)
}

// ExcelNameFn returns the Excel-style column name, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelNameFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
