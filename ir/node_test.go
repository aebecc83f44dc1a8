package ir

import (
	"testing"
)

func TestFromKeyValsOrder(t *testing.T) {
	doc := FromKeyVals(
		KeyVal{"z", FromInt(1)},
		KeyVal{"a", FromInt(2)},
		KeyVal{"m", FromInt(3)},
	)
	want := []string{"z", "a", "m"}
	for i, f := range doc.Fields {
		if f.String != want[i] {
			t.Errorf("field %d: got %q, want %q", i, f.String, want[i])
		}
	}
}

func TestFromMapSorted(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	want := []string{"a", "m", "z"}
	for i, f := range doc.Fields {
		if f.String != want[i] {
			t.Errorf("field %d: got %q, want %q", i, f.String, want[i])
		}
	}
}

func TestGet(t *testing.T) {
	doc := FromKeyVals(
		KeyVal{"a", FromInt(1)},
		KeyVal{"b", FromString("two")},
	)
	if v := Get(doc, "b"); v == nil || v.String != "two" {
		t.Errorf("Get b: got %v", v)
	}
	if v := Get(doc, "c"); v != nil {
		t.Errorf("Get c: got %s, want nil", CompactString(v))
	}
	if v := Get(FromInt(1), "a"); v != nil {
		t.Errorf("Get on leaf: got %s, want nil", CompactString(v))
	}
	if v := Get(nil, "a"); v != nil {
		t.Errorf("Get on nil: got %s, want nil", CompactString(v))
	}
}

func TestClone(t *testing.T) {
	doc := FromKeyVals(
		KeyVal{"a", FromInt(1)},
		KeyVal{"b", FromSlice([]*Node{FromString("x")})},
	)
	cp := doc.Clone()
	if Compare(doc, cp) != 0 {
		t.Fatalf("clone differs: %s vs %s", CompactString(doc), CompactString(cp))
	}
	*cp.Values[0].Int64 = 99
	cp.Values[1].Values[0].String = "y"
	if got := CompactString(doc); got != `{"a": 1, "b": ["x"]}` {
		t.Errorf("mutating the clone changed the original: %s", got)
	}
}
