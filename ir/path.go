package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// PathError reports where a path walk stopped: the unresolved
// remainder of the path and the value the walk was standing on.
type PathError struct {
	Remainder string
	At        *Node
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q for remaining object %s", e.Remainder, CompactString(e.At))
}

func (e *PathError) Is(target error) bool {
	return target == ErrPath
}

type resolveOpts struct {
	stringIndex bool
}

type ResolveOption func(*resolveOpts)

// StringIndexing permits a numeric segment to index into a string
// cursor by rune position. Off by default: strings are indexable like
// arrays, but that is usually not what a path means.
func StringIndexing(v bool) ResolveOption {
	return func(o *resolveOpts) { o.stringIndex = v }
}

// Resolve walks root by the /-separated segments of path and returns
// the value reached after consuming all of them, which may be a
// container. A segment of decimal digits indexes the cursor only when
// the cursor is an array (or a string, with StringIndexing); otherwise
// it is an object key, even if numeric. On failure the error is a
// *PathError carrying the unresolved remainder and the cursor.
func Resolve(root *Node, path string, opts ...ResolveOption) (*Node, error) {
	ro := &resolveOpts{}
	for _, opt := range opts {
		opt(ro)
	}
	steps := strings.Split(path, "/")
	cur := root
	for i, step := range steps {
		next := stepInto(cur, step, ro)
		if next == nil {
			return nil, &PathError{
				Remainder: strings.Join(steps[i:], "/"),
				At:        cur,
			}
		}
		cur = next
	}
	return cur, nil
}

func stepInto(cur *Node, step string, ro *resolveOpts) *Node {
	if isDigits(step) {
		switch cur.Type {
		case ArrayType:
			idx, err := strconv.Atoi(step)
			if err != nil || idx >= len(cur.Values) {
				return nil
			}
			return cur.Values[idx]
		case StringType:
			if !ro.stringIndex {
				return nil
			}
			idx, err := strconv.Atoi(step)
			if err != nil {
				return nil
			}
			rs := []rune(cur.String)
			if idx >= len(rs) {
				return nil
			}
			return FromString(string(rs[idx]))
		}
	}
	return Get(cur, step)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
