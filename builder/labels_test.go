package builder_test

import (
	"testing"

	"github.com/katalvlaran/critpath/builder"
)

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestLabelFns verifies each LabelFn on valid inputs.
func TestLabelFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.LabelFn
		input int
		want  string
	}{
		{"NoLabels", builder.NoLabels, 9, ""},
		{"Decimal_zero", builder.DecimalLabelFn, 0, "0"},
		{"Decimal_multi", builder.DecimalLabelFn, 123, "123"},
		{"Excel_A", builder.ExcelColumnLabelFn, 0, "A"},
		{"Excel_Z", builder.ExcelColumnLabelFn, 25, "Z"},
		{"Excel_AA", builder.ExcelColumnLabelFn, 26, "AA"},
		{"Excel_ZZ", builder.ExcelColumnLabelFn, 701, "ZZ"},
		{"Excel_AAA", builder.ExcelColumnLabelFn, 702, "AAA"},
		{"Prefix", builder.PrefixLabelFn("job-"), 4, "job-4"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q, want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}

	assertPanics(t, func() { builder.ExcelColumnLabelFn(-1) }, "ExcelColumnLabelFn(-1)")
}

// TestLabelsReachGraph verifies that constructors label vertices by ID.
func TestLabelsReachGraph(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelLabels()},
		builder.Path(2), builder.Cycle(3))
	if err != nil {
		t.Fatalf("BuildGraph error: %v", err)
	}
	for id, want := range []string{"A", "B", "C", "D", "E"} {
		if got := g.Label(id); got != want {
			t.Errorf("Label(%d) = %q, want %q", id, got, want)
		}
	}
	if id, ok := g.VertexByLabel("E"); !ok || id != 4 {
		t.Errorf("VertexByLabel(E) = %d,%v", id, ok)
	}
}
