package ir

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anita-format/go-anita/dating"
)

func TestQuote(t *testing.T) {
	qts := []struct {
		in, want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\\b", `"a\\b"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"\x01", `""`},
		{"héllo wörld", `"héllo wörld"`},
	}
	for _, qt := range qts {
		if got := Quote(qt.in); got != qt.want {
			t.Errorf("Quote(%q): got %s, want %s", qt.in, got, qt.want)
		}
	}
}

func TestLeafString(t *testing.T) {
	d := dating.Date{Year: 2010, Month: time.December, Day: 24}
	ts := time.Date(2010, 12, 24, 7, 6, 0, 0, time.UTC)
	lts := []struct {
		node *Node
		want string
	}{
		{Null(), "null"},
		{FromBool(true), "true"},
		{FromBool(false), "false"},
		{FromInt(42), "42"},
		{FromInt(-1), "-1"},
		{FromFloat(2.5), "2.5"},
		{FromFloat(3), "3.0"},
		{FromString("x"), `"x"`},
		{FromDate(d), `"2010-12-24"`},
		{FromTime(ts), `"2010-12-24T07:06:00Z"`},
		{FromDecimal(decimal.RequireFromString("1.10")), `"1.10"`},
	}
	for _, lt := range lts {
		if got := LeafString(lt.node); got != lt.want {
			t.Errorf("%s: got %s, want %s", lt.node.Type, got, lt.want)
		}
	}
}

func TestCompactString(t *testing.T) {
	doc := FromKeyVals(
		KeyVal{"a", FromInt(1)},
		KeyVal{"b", FromSlice([]*Node{FromInt(2), FromInt(3)})},
		KeyVal{"c", FromKeyVals(KeyVal{"d", Null()})},
	)
	want := `{"a": 1, "b": [2, 3], "c": {"d": null}}`
	if got := CompactString(doc); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
