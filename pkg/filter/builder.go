package filter

// Builder assembles criteria fluently; validation happens in Build
type Builder struct {
	specs []Spec
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) TextContains(field, query string) *Builder {
	b.specs = append(b.specs, Spec{Kind: KindTextContains, Field: field, Query: query})
	return b
}

func (b *Builder) TextContainsAny(query string, fields ...string) *Builder {
	b.specs = append(b.specs, Spec{Kind: KindTextContainsAny, Fields: fields, Query: query})
	return b
}

func (b *Builder) SetMembership(field string, allowed ...string) *Builder {
	b.specs = append(b.specs, Spec{Kind: KindSetMembership, Field: field, Allowed: allowed})
	return b
}

func (b *Builder) NumericRange(field string, ranges ...Range) *Builder {
	b.specs = append(b.specs, Spec{Kind: KindNumericRange, Field: field, Ranges: ranges})
	return b
}

func (b *Builder) BooleanEquals(field string, value bool) *Builder {
	b.specs = append(b.specs, Spec{Kind: KindBooleanEquals, Field: field, Value: &value})
	return b
}

// Spec appends an already declared spec
func (b *Builder) Spec(s ...Spec) *Builder {
	b.specs = append(b.specs, s...)
	return b
}

// Specs returns the accumulated specs without validating them
func (b *Builder) Specs() []Spec {
	return append([]Spec(nil), b.specs...)
}

// Build validates and compiles the accumulated specs
func (b *Builder) Build() (Criteria, error) {
	return FromSpecs(b.specs)
}

// MustBuild panics on a configuration error; for static criteria only
func (b *Builder) MustBuild() Criteria {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
