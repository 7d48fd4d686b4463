package filter

import (
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FieldType decides how a field is filtered and how its query parameter is parsed
type FieldType string

const (
	FieldEnum   FieldType = "enum"
	FieldNumber FieldType = "number"
	FieldBool   FieldType = "bool"
	FieldText   FieldType = "text"
)

// Reserved query parameters that never become criteria
const (
	ParamSearch = "q"
	ParamView   = "view"
)

// Bucket is a labelled numeric range offered as a filter option
type Bucket struct {
	Label string `json:"label"`
	Range Range  `json:"range"`
}

// FieldDef describes one filterable field of an entity
type FieldDef struct {
	Name    string    `json:"field"`
	Label   string    `json:"label"`
	Type    FieldType `json:"type"`
	Options []string  `json:"options,omitempty"`
	Buckets []Bucket  `json:"buckets,omitempty"`
	// Derived options are the distinct values present in the records
	Derived bool `json:"derived,omitempty"`
}

// Column names one spreadsheet column of the export
type Column struct {
	Field  string `json:"field"`
	Header string `json:"header"`
}

// Adapter is the filter configuration of one entity: search fields,
// filterable fields with their option lists, and export columns.
type Adapter struct {
	entity  string
	search  []string
	fields  []FieldDef
	index   map[string]int
	columns []Column
	known   map[string]struct{}
}

func NewAdapter(entity string) *Adapter {
	return &Adapter{
		entity: entity,
		index:  make(map[string]int),
		known:  make(map[string]struct{}),
	}
}

// ============================================================================
// Declaration
// ============================================================================

func (a *Adapter) Search(fields ...string) *Adapter {
	a.search = append(a.search, fields...)
	a.expose(fields...)
	return a
}

func (a *Adapter) Enum(name, label string, options ...string) *Adapter {
	return a.define(FieldDef{Name: name, Label: label, Type: FieldEnum, Options: options})
}

// DerivedEnum offers the distinct values found in the records
func (a *Adapter) DerivedEnum(name, label string) *Adapter {
	return a.define(FieldDef{Name: name, Label: label, Type: FieldEnum, Derived: true})
}

func (a *Adapter) Number(name, label string, buckets ...Bucket) *Adapter {
	return a.define(FieldDef{Name: name, Label: label, Type: FieldNumber, Buckets: buckets})
}

func (a *Adapter) Bool(name, label string) *Adapter {
	return a.define(FieldDef{Name: name, Label: label, Type: FieldBool})
}

func (a *Adapter) Text(name, label string) *Adapter {
	return a.define(FieldDef{Name: name, Label: label, Type: FieldText})
}

// Columns sets the export columns; their fields become valid criterion targets
func (a *Adapter) Columns(cols ...Column) *Adapter {
	a.columns = append(a.columns, cols...)
	for _, c := range cols {
		a.expose(c.Field)
	}
	return a
}

// Expose marks extra fields as valid criterion targets without offering options
func (a *Adapter) Expose(fields ...string) *Adapter {
	a.expose(fields...)
	return a
}

func (a *Adapter) define(def FieldDef) *Adapter {
	if i, ok := a.index[def.Name]; ok {
		a.fields[i] = def
		return a
	}
	a.index[def.Name] = len(a.fields)
	a.fields = append(a.fields, def)
	a.expose(def.Name)
	return a
}

func (a *Adapter) expose(fields ...string) {
	for _, f := range fields {
		a.known[f] = struct{}{}
	}
}

// ============================================================================
// Introspection
// ============================================================================

func (a *Adapter) Entity() string { return a.entity }

func (a *Adapter) SearchFields() []string {
	return append([]string(nil), a.search...)
}

func (a *Adapter) FieldDefs() []FieldDef {
	return append([]FieldDef(nil), a.fields...)
}

func (a *Adapter) Field(name string) (FieldDef, bool) {
	i, ok := a.index[name]
	if !ok {
		return FieldDef{}, false
	}
	return a.fields[i], true
}

func (a *Adapter) ExportColumns() []Column {
	return append([]Column(nil), a.columns...)
}

// Exposes reports whether criteria may target the field
func (a *Adapter) Exposes(field string) bool {
	_, ok := a.known[field]
	return ok
}

// ============================================================================
// Criteria construction
// ============================================================================

// Validate rejects specs naming fields the entity does not expose
func (a *Adapter) Validate(specs []Spec) error {
	for _, s := range specs {
		for _, f := range s.FieldNames() {
			if f != "" && !a.Exposes(f) {
				return ErrUnknownField(a.entity, f)
			}
		}
	}
	return nil
}

// Build validates specs against the entity and compiles them
func (a *Adapter) Build(specs []Spec) (Criteria, error) {
	if err := a.Validate(specs); err != nil {
		return Criteria{}, err
	}
	return FromSpecs(specs)
}

// SearchSpec is the search-box criterion for a query
func (a *Adapter) SearchSpec(query string) Spec {
	return Spec{Kind: KindTextContainsAny, Fields: a.SearchFields(), Query: query}
}

// FromQuery translates query parameters into criteria:
//
//	q=siva                     search box
//	status=HIRED,ON HOLD       enum set
//	score=80-100 | score=High  numeric range or bucket label
//	isActive=true              boolean
//
// Parameters that are not filterable fields are ignored.
func (a *Adapter) FromQuery(values url.Values) (Criteria, error) {
	specs, err := a.SpecsFromQuery(values)
	if err != nil {
		return Criteria{}, err
	}
	return a.Build(specs)
}

// SpecsFromQuery parses query parameters without compiling them
func (a *Adapter) SpecsFromQuery(values url.Values) ([]Spec, error) {
	var specs []Spec

	if q := strings.TrimSpace(values.Get(ParamSearch)); q != "" && len(a.search) > 0 {
		specs = append(specs, a.SearchSpec(q))
	}

	for _, def := range a.fields {
		raw, ok := values[def.Name]
		if !ok {
			continue
		}
		items := splitList(raw)
		if def.Type == FieldEnum {
			items = splitOptions(raw, def.Options)
		}
		if len(items) == 0 {
			continue
		}

		switch def.Type {
		case FieldEnum:
			specs = append(specs, Spec{Kind: KindSetMembership, Field: def.Name, Allowed: items})

		case FieldText:
			specs = append(specs, Spec{Kind: KindTextContains, Field: def.Name, Query: strings.TrimSpace(raw[0])})

		case FieldNumber:
			ranges := make([]Range, 0, len(items))
			for _, item := range items {
				r, err := parseRange(def, item)
				if err != nil {
					return nil, err
				}
				ranges = append(ranges, r)
			}
			specs = append(specs, Spec{Kind: KindNumericRange, Field: def.Name, Ranges: ranges})

		case FieldBool:
			b, err := strconv.ParseBool(items[0])
			if err != nil {
				return nil, ErrInvalidQuery(def.Name, items[0])
			}
			specs = append(specs, Spec{Kind: KindBooleanEquals, Field: def.Name, Value: &b})
		}
	}

	return specs, nil
}

func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// splitOptions is splitList for enums whose declared options contain commas,
// such as "Full Time, Permanent"
func splitOptions(raw, options []string) []string {
	byKey := make(map[string]string)
	for _, o := range options {
		if strings.Contains(o, ",") {
			byKey[listKey(strings.Split(o, ","))] = o
		}
	}
	if len(byKey) == 0 {
		return splitList(raw)
	}

	var out []string
	for _, r := range raw {
		parts := strings.Split(r, ",")
		for i := 0; i < len(parts); {
			next := i + 1
			for j := len(parts); j > i+1; j-- {
				if o, ok := byKey[listKey(parts[i:j])]; ok {
					out = append(out, o)
					next = j
					break
				}
			}
			if next == i+1 {
				if p := strings.TrimSpace(parts[i]); p != "" {
					out = append(out, p)
				}
			}
			i = next
		}
	}
	return out
}

func listKey(parts []string) string {
	trimmed := make([]string, len(parts))
	for i, p := range parts {
		trimmed[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(trimmed, ",")
}

// parseRange accepts a bucket label, "min-max" or a single number
func parseRange(def FieldDef, item string) (Range, error) {
	for _, b := range def.Buckets {
		if strings.EqualFold(b.Label, item) {
			return b.Range, nil
		}
	}

	if n, err := strconv.ParseFloat(item, 64); err == nil {
		return Range{Min: n, Max: n}, nil
	}

	// the separator is searched after the first byte so "-5-10" keeps its sign
	if len(item) > 1 {
		if i := strings.Index(item[1:], "-"); i >= 0 {
			lo, errLo := strconv.ParseFloat(strings.TrimSpace(item[:i+1]), 64)
			hi, errHi := strconv.ParseFloat(strings.TrimSpace(item[i+2:]), 64)
			if errLo == nil && errHi == nil {
				return Range{Min: lo, Max: hi}, nil
			}
		}
	}

	return Range{}, ErrInvalidQuery(def.Name, item)
}

// ============================================================================
// Options
// ============================================================================

// Option is one selectable value of a filter control
type Option struct {
	Value string `json:"value"`
	Count int    `json:"count"`
	Range *Range `json:"range,omitempty"`
}

// FieldOptions is the populated control of one filterable field
type FieldOptions struct {
	Field   string    `json:"field"`
	Label   string    `json:"label"`
	Type    FieldType `json:"type"`
	Options []Option  `json:"options"`
}

// Options populates every filter control from the current records.
// Closed lists keep their declared order; derived lists use first-seen order.
func (a *Adapter) Options(records []Record) []FieldOptions {
	out := make([]FieldOptions, 0, len(a.fields))
	for _, def := range a.fields {
		fo := FieldOptions{Field: def.Name, Label: def.Label, Type: def.Type, Options: []Option{}}

		switch {
		case def.Type == FieldNumber:
			for _, b := range def.Buckets {
				r := b.Range
				crit := &rangeCriterion{field: def.Name, ranges: []Range{r}}
				fo.Options = append(fo.Options, Option{Value: b.Label, Count: count(records, crit), Range: &r})
			}

		case def.Type == FieldBool:
			for _, v := range []bool{true, false} {
				crit := &boolCriterion{field: def.Name, value: v}
				fo.Options = append(fo.Options, Option{Value: strconv.FormatBool(v), Count: count(records, crit)})
			}

		case def.Type == FieldEnum && def.Derived:
			for _, v := range Distinct(records, def.Name) {
				crit := newSetCriterion(def.Name, []string{v})
				fo.Options = append(fo.Options, Option{Value: v, Count: count(records, crit)})
			}

		case def.Type == FieldEnum:
			for _, v := range def.Options {
				crit := newSetCriterion(def.Name, []string{v})
				fo.Options = append(fo.Options, Option{Value: v, Count: count(records, crit)})
			}
		}

		out = append(out, fo)
	}
	return out
}

func count(records []Record, c Criterion) int {
	n := 0
	for _, r := range records {
		if c.Match(r) {
			n++
		}
	}
	return n
}

// Distinct returns the non-empty text values of a field in first-seen order
func Distinct(records []Record, field string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		text, ok := asText(r[field])
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		key := fold(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, text)
	}
	return out
}

// Suggest ranks the option values of a field against a partial input
func (a *Adapter) Suggest(records []Record, field, input string, limit int) ([]string, error) {
	def, ok := a.Field(field)
	if !ok {
		return nil, ErrUnknownField(a.entity, field)
	}

	var candidates []string
	if def.Type == FieldNumber {
		for _, b := range def.Buckets {
			candidates = append(candidates, b.Label)
		}
	} else if def.Derived || len(def.Options) == 0 {
		candidates = Distinct(records, field)
	} else {
		candidates = slices.Clone(def.Options)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return truncate(candidates, limit), nil
	}

	ranks := fuzzy.RankFindNormalizedFold(input, candidates)
	sort.Stable(ranks)

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, candidates[r.OriginalIndex])
	}
	return truncate(out, limit), nil
}

func truncate(values []string, limit int) []string {
	if limit > 0 && len(values) > limit {
		return values[:limit]
	}
	return values
}
