package anita

import (
	"errors"
	"testing"

	"github.com/anita-format/go-anita/ir"
	"github.com/anita-format/go-anita/parse"
)

func TestRender(t *testing.T) {
	got, err := Render(map[string]any{
		"a": 1,
		"b": []any{2, 3},
		"c": map[string]any{"d": 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "a": 1,
    "b": [2, 3],
    "c": {"d": 4}
}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRenderUnsupported(t *testing.T) {
	_, err := Render(map[string]any{"a": make(chan int)})
	if !errors.Is(err, ir.ErrUnsupportedType) {
		t.Errorf("got %v, want an unsupported type error", err)
	}
}

// Rendered output parses back to the same tree when only plain kinds
// are present.
func TestRenderRoundTrip(t *testing.T) {
	in := ir.FromKeyVals(
		ir.KeyVal{Key: "z", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Node{
			ir.FromFloat(2.5),
			ir.FromString("x"),
			ir.Null(),
			ir.FromKeyVals(ir.KeyVal{Key: "deep", Val: ir.FromSlice([]*ir.Node{
				ir.FromSlice([]*ir.Node{ir.FromBool(true)}),
			})}),
		})},
	)
	out, err := Render(in)
	if err != nil {
		t.Fatal(err)
	}
	back, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatalf("rendered output does not parse: %v\n%s", err, out)
	}
	if ir.Compare(in, back) != 0 {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", ir.CompactString(in), ir.CompactString(back))
	}
}

func TestResolveScenarios(t *testing.T) {
	doc := map[string]any{
		"data": []any{
			map[string]any{"name": "Alice"},
			map[string]any{"name": "Bob"},
		},
	}
	v, err := Resolve(doc, "data/0/name")
	if err != nil {
		t.Fatal(err)
	}
	if v.String != "Alice" {
		t.Errorf("got %q, want %q", v.String, "Alice")
	}
	_, err = Resolve(doc, "data/2/name")
	var pe *ir.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want a path error", err)
	}
	if pe.Remainder != "2/name" {
		t.Errorf("remainder %q, want %q", pe.Remainder, "2/name")
	}
	if got := ir.CompactString(pe.At); got != `[{"name": "Alice"}, {"name": "Bob"}]` {
		t.Errorf("failed at %s", got)
	}
}
