package filter

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Kind tags a criterion variant
type Kind string

const (
	KindTextContains    Kind = "text-contains"
	KindTextContainsAny Kind = "text-contains-any"
	KindSetMembership   Kind = "set-membership"
	KindNumericRange    Kind = "numeric-range"
	KindBooleanEquals   Kind = "boolean-equals"
)

// Kinds lists every supported criterion kind
func Kinds() []Kind {
	return []Kind{KindTextContains, KindTextContainsAny, KindSetMembership, KindNumericRange, KindBooleanEquals}
}

// Range is an inclusive numeric interval
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in [Min, Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}

// UnmarshalJSON accepts {"min":80,"max":90} and the tuple form [80,90]
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("range tuple must have two bounds, got %d", len(pair))
		}
		r.Min, r.Max = pair[0], pair[1]
		return nil
	}

	type plain Range
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Range(p)
	return nil
}

// Spec is the declarative, serializable form of a criterion
type Spec struct {
	Kind    Kind     `json:"kind"`
	Field   string   `json:"field,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Query   string   `json:"query,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
	Ranges  []Range  `json:"ranges,omitempty"`
	Value   *bool    `json:"value,omitempty"`
}

// FieldNames returns every field the spec reads
func (s Spec) FieldNames() []string {
	if s.Kind == KindTextContainsAny {
		return s.Fields
	}
	if s.Field == "" {
		return nil
	}
	return []string{s.Field}
}

// Criterion is one compiled filter constraint
type Criterion interface {
	Kind() Kind
	// Active reports whether the criterion constrains anything
	Active() bool
	Match(r Record) bool
	Spec() Spec
}

// compile validates a spec and turns it into a criterion
func compile(s Spec) (Criterion, error) {
	switch s.Kind {
	case KindTextContains:
		if strings.TrimSpace(s.Field) == "" {
			return nil, ErrMissingField(s.Kind)
		}
		return newTextCriterion(s.Kind, []string{s.Field}, s.Query), nil

	case KindTextContainsAny:
		fields := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			if strings.TrimSpace(f) == "" {
				return nil, ErrMissingField(s.Kind)
			}
			fields = append(fields, f)
		}
		if len(fields) == 0 {
			return nil, ErrMissingField(s.Kind)
		}
		return newTextCriterion(s.Kind, fields, s.Query), nil

	case KindSetMembership:
		if strings.TrimSpace(s.Field) == "" {
			return nil, ErrMissingField(s.Kind)
		}
		return newSetCriterion(s.Field, s.Allowed), nil

	case KindNumericRange:
		if strings.TrimSpace(s.Field) == "" {
			return nil, ErrMissingField(s.Kind)
		}
		for _, r := range s.Ranges {
			if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
				return nil, ErrInvalidRange(s.Field, r)
			}
		}
		return &rangeCriterion{field: s.Field, ranges: append([]Range(nil), s.Ranges...)}, nil

	case KindBooleanEquals:
		if strings.TrimSpace(s.Field) == "" {
			return nil, ErrMissingField(s.Kind)
		}
		if s.Value == nil {
			return nil, ErrMissingValue(s.Kind, s.Field)
		}
		return &boolCriterion{field: s.Field, value: *s.Value}, nil

	default:
		return nil, ErrUnknownKind(s.Kind)
	}
}

// ============================================================================
// text-contains / text-contains-any
// ============================================================================

type textCriterion struct {
	kind   Kind
	fields []string
	query  string
	folded string
}

func newTextCriterion(kind Kind, fields []string, query string) *textCriterion {
	q := strings.TrimSpace(query)
	return &textCriterion{
		kind:   kind,
		fields: append([]string(nil), fields...),
		query:  q,
		folded: fold(q),
	}
}

func (c *textCriterion) Kind() Kind   { return c.kind }
func (c *textCriterion) Active() bool { return c.folded != "" }

func (c *textCriterion) Match(r Record) bool {
	for _, f := range c.fields {
		text, ok := asText(r[f])
		if ok && strings.Contains(fold(text), c.folded) {
			return true
		}
	}
	return false
}

func (c *textCriterion) Spec() Spec {
	if c.kind == KindTextContains {
		return Spec{Kind: c.kind, Field: c.fields[0], Query: c.query}
	}
	return Spec{Kind: c.kind, Fields: append([]string(nil), c.fields...), Query: c.query}
}

// ============================================================================
// set-membership
// ============================================================================

type setCriterion struct {
	field   string
	allowed []string
	members map[string]struct{}
}

func newSetCriterion(field string, allowed []string) *setCriterion {
	c := &setCriterion{
		field:   field,
		allowed: make([]string, 0, len(allowed)),
		members: make(map[string]struct{}, len(allowed)),
	}
	for _, a := range allowed {
		key := fold(a)
		if _, dup := c.members[key]; dup {
			continue
		}
		c.members[key] = struct{}{}
		c.allowed = append(c.allowed, a)
	}
	return c
}

func (c *setCriterion) Kind() Kind   { return KindSetMembership }
func (c *setCriterion) Active() bool { return len(c.members) > 0 }

func (c *setCriterion) Match(r Record) bool {
	text, ok := asText(r[c.field])
	if !ok {
		return false
	}
	_, member := c.members[fold(text)]
	return member
}

func (c *setCriterion) Spec() Spec {
	return Spec{Kind: KindSetMembership, Field: c.field, Allowed: append([]string(nil), c.allowed...)}
}

// ============================================================================
// numeric-range
// ============================================================================

type rangeCriterion struct {
	field  string
	ranges []Range
}

func (c *rangeCriterion) Kind() Kind   { return KindNumericRange }
func (c *rangeCriterion) Active() bool { return len(c.ranges) > 0 }

func (c *rangeCriterion) Match(r Record) bool {
	v, ok := asNumber(r[c.field])
	if !ok {
		return false
	}
	for _, rg := range c.ranges {
		if rg.Contains(v) {
			return true
		}
	}
	return false
}

func (c *rangeCriterion) Spec() Spec {
	return Spec{Kind: KindNumericRange, Field: c.field, Ranges: append([]Range(nil), c.ranges...)}
}

// ============================================================================
// boolean-equals
// ============================================================================

type boolCriterion struct {
	field string
	value bool
}

func (c *boolCriterion) Kind() Kind   { return KindBooleanEquals }
func (c *boolCriterion) Active() bool { return true }

func (c *boolCriterion) Match(r Record) bool {
	v, ok := asBool(r[c.field])
	return ok && v == c.value
}

func (c *boolCriterion) Spec() Spec {
	v := c.value
	return Spec{Kind: KindBooleanEquals, Field: c.field, Value: &v}
}
