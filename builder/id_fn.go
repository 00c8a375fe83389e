// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates an object identifier from its zero-based index.
// It must be pure: the same idx always yields the same id.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns spreadsheet-column letters for idx:
// 0→"A", 25→"Z", 26→"AA", 27→"AB", ... . Panics if idx < 0.
func SymbolIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be ≥ 0, got %d", idx))
	}
	var letters []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		letters = append(letters, 'A'+rune(i%26))
	}
	for l, r := 0, len(letters)-1; l < r; l, r = l+1, r-1 {
		letters[l], letters[r] = letters[r], letters[l]
	}

	return string(letters)
}
