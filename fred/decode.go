package fred

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05-07"

// node is a generic XML element. Responses are decoded into a node tree and
// then mapped onto records field by field, so attributes and child elements
// can be read the same way.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

func (n *node) name() string {
	return n.XMLName.Local
}

func (n *node) is(name string) bool {
	return strings.EqualFold(n.XMLName.Local, name)
}

// child returns the first direct child with the given tag.
func (n *node) child(name string) *node {
	for i := range n.Children {
		if n.Children[i].is(name) {
			return &n.Children[i]
		}
	}
	return nil
}

func parseDocument(data []byte) (*node, error) {
	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid XML", Err: err}
	}
	return &root, nil
}

// parseSingle decodes the record named name. The root is used when its tag
// matches, otherwise its first matching child.
func parseSingle[T any](data []byte, name string, decode func(*node) (T, error)) (T, error) {
	var zero T
	root, err := parseDocument(data)
	if err != nil {
		return zero, err
	}
	target := root
	if !root.is(name) {
		target = root.child(name)
	}
	if target == nil {
		return zero, &MalformedResponseError{
			Element: root.name(),
			Reason:  "no <" + name + "> element in response",
		}
	}
	return decode(target)
}

// parseList decodes every child of the root in document order. A non-empty
// filter skips children whose tag does not match it.
func parseList[T any](data []byte, filter string, decode func(*node) (T, error)) ([]T, error) {
	root, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	return decodeChildren(root, filter, decode)
}

func decodeChildren[T any](parent *node, filter string, decode func(*node) (T, error)) ([]T, error) {
	items := make([]T, 0, len(parent.Children))
	for i := range parent.Children {
		c := &parent.Children[i]
		if filter != "" && !c.is(filter) {
			continue
		}
		item, err := decode(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// fieldReader reads typed values from an element's attributes or, failing
// that, from child elements of the same name. The first error wins and
// later reads become no-ops.
type fieldReader struct {
	n   *node
	err error
}

func newFieldReader(n *node) *fieldReader {
	return &fieldReader{n: n}
}

func (r *fieldReader) lookup(name string) (string, bool) {
	for _, a := range r.n.Attrs {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value, true
		}
	}
	if c := r.n.child(name); c != nil {
		return strings.TrimSpace(c.Text), true
	}
	return "", false
}

func (r *fieldReader) fail(field, reason string, err error) {
	if r.err == nil {
		r.err = &MalformedResponseError{Element: r.n.name(), Field: field, Reason: reason, Err: err}
	}
}

func (r *fieldReader) required(name string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.lookup(name)
	if !ok {
		r.fail(name, "missing required field", nil)
		return "", false
	}
	return v, true
}

// optional reports a value only when it is present and non-blank.
func (r *fieldReader) optional(name string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (r *fieldReader) str(name string) string {
	v, _ := r.required(name)
	return v
}

func (r *fieldReader) optStr(name string) string {
	v, _ := r.optional(name)
	return v
}

func (r *fieldReader) nullable(name string) *string {
	v, ok := r.optional(name)
	if !ok {
		return nil
	}
	return &v
}

func (r *fieldReader) parseInt(name, v string) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		r.fail(name, "invalid integer", err)
		return 0
	}
	return i
}

func (r *fieldReader) reqInt(name string) int {
	v, ok := r.required(name)
	if !ok {
		return 0
	}
	return r.parseInt(name, v)
}

func (r *fieldReader) optInt(name string) int {
	v, ok := r.optional(name)
	if !ok {
		return 0
	}
	return r.parseInt(name, v)
}

func (r *fieldReader) optBool(name string) bool {
	v, ok := r.optional(name)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return true
	case "false":
		return false
	}
	r.fail(name, "invalid boolean "+strconv.Quote(v), nil)
	return false
}

func (r *fieldReader) parseDate(name, v string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		r.fail(name, "invalid date", err)
		return time.Time{}
	}
	return t
}

func (r *fieldReader) date(name string) time.Time {
	v, ok := r.required(name)
	if !ok {
		return time.Time{}
	}
	return r.parseDate(name, v)
}

func (r *fieldReader) optDate(name string) time.Time {
	v, ok := r.optional(name)
	if !ok {
		return time.Time{}
	}
	return r.parseDate(name, v)
}

// optTimestamp parses values such as "2013-07-31 09:26:16-05".
func (r *fieldReader) optTimestamp(name string) time.Time {
	v, ok := r.optional(name)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(timestampLayout, strings.TrimSpace(v))
	if err != nil {
		r.fail(name, "invalid timestamp", err)
		return time.Time{}
	}
	return t
}

// textDate parses the element's own text content as a calendar date.
func (r *fieldReader) textDate() time.Time {
	if r.err != nil {
		return time.Time{}
	}
	v := strings.TrimSpace(r.n.Text)
	if v == "" {
		r.fail("#text", "missing date text", nil)
		return time.Time{}
	}
	return r.parseDate("#text", v)
}

func (r *fieldReader) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *fieldReader) done() error {
	return r.err
}
