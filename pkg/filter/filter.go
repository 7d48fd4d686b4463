package filter

import "github.com/Abraxas-365/talentdesk/pkg/errx"

// Record is the field view of one entity instance
type Record = map[string]any

// Recorder is implemented by every filterable entity
type Recorder interface {
	Fields() Record
}

// Criteria is an immutable, validated list of criteria combined with AND
type Criteria struct {
	items []Criterion
}

// FromSpecs validates specs and compiles them. Any malformed spec
// fails the whole configuration; nothing is filtered with it.
func FromSpecs(specs []Spec) (Criteria, error) {
	items := make([]Criterion, 0, len(specs))
	for i, s := range specs {
		c, err := compile(s)
		if err != nil {
			if e, ok := errx.As(err); ok {
				e.WithDetail("index", i)
			}
			return Criteria{}, err
		}
		items = append(items, c)
	}
	return Criteria{items: items}, nil
}

// Len counts every criterion, active or not
func (c Criteria) Len() int {
	return len(c.items)
}

// Active returns the criteria that constrain the result
func (c Criteria) Active() []Criterion {
	out := make([]Criterion, 0, len(c.items))
	for _, it := range c.items {
		if it.Active() {
			out = append(out, it)
		}
	}
	return out
}

// IsEmpty reports whether no criterion is active
func (c Criteria) IsEmpty() bool {
	for _, it := range c.items {
		if it.Active() {
			return false
		}
	}
	return true
}

// Specs returns the declarative form, e.g. for saving a view
func (c Criteria) Specs() []Spec {
	out := make([]Spec, len(c.items))
	for i, it := range c.items {
		out[i] = it.Spec()
	}
	return out
}

// And combines two criteria lists
func (c Criteria) And(other Criteria) Criteria {
	items := make([]Criterion, 0, len(c.items)+len(other.items))
	items = append(items, c.items...)
	items = append(items, other.items...)
	return Criteria{items: items}
}

// Match reports whether a record satisfies every active criterion
func (c Criteria) Match(r Record) bool {
	for _, it := range c.items {
		if it.Active() && !it.Match(r) {
			return false
		}
	}
	return true
}

// Apply returns the items satisfying c, in their original order.
// The input slice is never modified.
func Apply[T Recorder](items []T, c Criteria) []T {
	return ApplyFunc(items, func(it T) Record { return it.Fields() }, c)
}

// ApplyFunc filters items whose record view is produced by fields
func ApplyFunc[T any](items []T, fields func(T) Record, c Criteria) []T {
	active := c.Active()
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchAll(active, fields(it)) {
			out = append(out, it)
		}
	}
	return out
}

// ApplyRecords filters plain records
func ApplyRecords(records []Record, c Criteria) []Record {
	return ApplyFunc(records, func(r Record) Record { return r }, c)
}

// Records collects the record view of each item
func Records[T Recorder](items []T) []Record {
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = it.Fields()
	}
	return out
}

func matchAll(active []Criterion, r Record) bool {
	for _, c := range active {
		if !c.Match(r) {
			return false
		}
	}
	return true
}
