package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	fts := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
	}
	for _, ft := range fts {
		f, err := ParseFormat(ft.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", ft.in, err)
			continue
		}
		if f != ft.want {
			t.Errorf("%q: got %s, want %s", ft.in, f, ft.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want a bad format error", err)
	}
}

func TestDetect(t *testing.T) {
	dts := []struct {
		path string
		want Format
	}{
		{"doc.json", JSONFormat},
		{"doc.yaml", YAMLFormat},
		{"doc.yml", YAMLFormat},
		{"doc.txt", JSONFormat},
		{"-", JSONFormat},
	}
	for _, dt := range dts {
		if got := Detect(dt.path); got != dt.want {
			t.Errorf("%q: got %s, want %s", dt.path, got, dt.want)
		}
	}
}

func TestFormatText(t *testing.T) {
	if JSONFormat.String() != "json" || YAMLFormat.String() != "yaml" {
		t.Errorf("String misreports: %s, %s", JSONFormat, YAMLFormat)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil {
		t.Fatal(err)
	}
	if f != YAMLFormat {
		t.Errorf("got %s, want %s", f, YAMLFormat)
	}
}
