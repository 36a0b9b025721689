package jsoncompare

import (
	"strconv"
	"strings"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// PathElement is one step in a Path: either an object key or an array index.
type PathElement struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeyElement returns a PathElement for an object key.
func KeyElement(key string) PathElement {
	return PathElement{Key: key}
}

// IndexElement returns a PathElement for an array index.
func IndexElement(index int) PathElement {
	return PathElement{Index: index, IsIndex: true}
}

// Path locates a value inside a JSON document, starting from the root.
type Path []PathElement

// Key returns a new Path with an object key appended.
func (p Path) Key(key string) Path {
	return p.append(KeyElement(key))
}

// Index returns a new Path with an array index appended.
func (p Path) Index(index int) Path {
	return p.append(IndexElement(index))
}

func (p Path) equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) append(e PathElement) Path {
	ret := make(Path, len(p), len(p)+1)
	copy(ret, p)
	return append(ret, e)
}

// String renders the path as "$" for the root, followed by ".key" for simple keys, ["key"] for keys that
// are not simple identifiers, and [n] for array indexes; for example, $.items[2]["content-type"].
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, e := range p {
		switch {
		case e.IsIndex:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(e.Index))
			sb.WriteByte(']')
		case isSimpleKey(e.Key):
			sb.WriteByte('.')
			sb.WriteString(e.Key)
		default:
			w := jwriter.NewWriter()
			w.String(e.Key)
			sb.WriteByte('[')
			sb.Write(w.Bytes())
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

func isSimpleKey(key string) bool {
	if key == "" {
		return false
	}
	for i, ch := range key {
		switch {
		case ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
