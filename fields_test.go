package anita

import (
	"errors"
	"testing"

	"github.com/anita-format/go-anita/ir"
)

func fieldsDoc(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs...) }

func TestOnlyFieldsLike(t *testing.T) {
	docs := ir.FromSlice([]*ir.Node{
		fieldsDoc(
			ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
			ir.KeyVal{Key: "b", Val: ir.FromInt(2)},
			ir.KeyVal{Key: "c", Val: ir.FromInt(3)},
		),
		fieldsDoc(
			ir.KeyVal{Key: "b", Val: ir.FromInt(3)},
			ir.KeyVal{Key: "c", Val: ir.FromInt(4)},
			ir.KeyVal{Key: "d", Val: ir.FromInt(5)},
		),
		fieldsDoc(
			ir.KeyVal{Key: "c", Val: ir.FromInt(5)},
			ir.KeyVal{Key: "d", Val: ir.FromInt(6)},
			ir.KeyVal{Key: "e", Val: ir.FromInt(7)},
		),
	})
	got, err := OnlyFieldsLike(docs, "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"b": 2, "c": 3}, {"b": 3, "c": 4}, {"c": 5}]`
	if s := ir.CompactString(got); s != want {
		t.Errorf("got %s, want %s", s, want)
	}
}

func TestOnlyFieldsLikeDropsNonMatching(t *testing.T) {
	docs := ir.FromSlice([]*ir.Node{
		fieldsDoc(
			ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
			ir.KeyVal{Key: "b", Val: ir.FromInt(2)},
		),
		fieldsDoc(
			ir.KeyVal{Key: "d", Val: ir.FromInt(6)},
			ir.KeyVal{Key: "e", Val: ir.FromInt(7)},
		),
	})
	got, err := OnlyFieldsLike(docs, "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	if s := ir.CompactString(got); s != `[{"b": 2}]` {
		t.Errorf("got %s", s)
	}
}

func TestOnlyFieldsLikeSubstringMatch(t *testing.T) {
	docs := ir.FromSlice([]*ir.Node{
		fieldsDoc(
			ir.KeyVal{Key: "user_name", Val: ir.FromString("x")},
			ir.KeyVal{Key: "age", Val: ir.FromInt(30)},
		),
	})
	got, err := OnlyFieldsLike(docs, "name")
	if err != nil {
		t.Fatal(err)
	}
	if s := ir.CompactString(got); s != `[{"user_name": "x"}]` {
		t.Errorf("got %s", s)
	}
}

func TestOnlyFieldsLikeInputUntouched(t *testing.T) {
	doc := fieldsDoc(
		ir.KeyVal{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
		ir.KeyVal{Key: "x", Val: ir.FromInt(2)},
	)
	docs := ir.FromSlice([]*ir.Node{doc})
	got, err := OnlyFieldsLike(docs, "b")
	if err != nil {
		t.Fatal(err)
	}
	got.Values[0].Values[0].Values[0] = ir.FromInt(99)
	if s := ir.CompactString(doc); s != `{"b": [1], "x": 2}` {
		t.Errorf("input was modified: %s", s)
	}
}

func TestOnlyFieldsLikeBadInput(t *testing.T) {
	if _, err := OnlyFieldsLike(ir.FromInt(1), "a"); !errors.Is(err, ErrType) {
		t.Errorf("scalar input: got %v, want a type error", err)
	}
	docs := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	if _, err := OnlyFieldsLike(docs, "a"); !errors.Is(err, ErrType) {
		t.Errorf("scalar element: got %v, want a type error", err)
	}
}
