// Package builder provides label schemes for fixture vertices.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn derives a vertex label from its ID. It must be pure and, when it
// returns non-empty strings, injective over the IDs it is called with.
type LabelFn func(id int) string

// NoLabels leaves vertices unlabeled; core.Graph.Label then reports the ID.
func NoLabels(int) string { return "" }

// DecimalLabelFn returns the decimal string of id, e.g. 0→"0", 42→"42".
func DecimalLabelFn(id int) string {
	return strconv.Itoa(id)
}

// ExcelColumnLabelFn returns the “Excel-style” column name for id,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if id < 0.
func ExcelColumnLabelFn(id int) string {
	if id < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: id must be ≥ 0, got %d", id))
	}
	var runes []rune
	for i := id; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabelFn returns prefix + decimal id, e.g. "task0", "task1", ...
func PrefixLabelFn(prefix string) LabelFn {
	return func(id int) string {
		return prefix + strconv.Itoa(id)
	}
}

// WithExcelLabels sets the label scheme to ExcelColumnLabelFn.
func WithExcelLabels() BuilderOption {
	return WithLabelScheme(ExcelColumnLabelFn)
}

// WithPrefixLabels sets the label scheme to PrefixLabelFn(prefix).
func WithPrefixLabels(prefix string) BuilderOption {
	return WithLabelScheme(PrefixLabelFn(prefix))
}
