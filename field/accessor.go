package field

// Accessor is the policy object behind one declared attribute. A single
// instance is shared by every entity of a type and is read-only after
// construction, so it needs no locking even if entities live on different
// goroutines.
type Accessor interface {
	// Kind reports the canonical target kind of this accessor.
	Kind() KindEnum

	// Coerce converts raw input into the canonical value for this kind.
	// Malformed input falls back to the default source; only strict-mode
	// identifier accessors and wrong-shape composite input surface errors.
	Coerce(raw any) (any, error)

	// Default produces a fresh default value, or ErrMissingDefault when the
	// accessor has no default source.
	Default() (any, error)

	// HasDefault reports whether Default can produce a value. Attributes
	// whose accessor has no default are required at import time.
	HasDefault() bool
}

// Factory produces a default value. List- and map-kind factories must return
// a fresh container on every call.
type Factory func() any

// Option configures an accessor at construction time.
type Option func(*config)

type config struct {
	literal    any
	hasLiteral bool
	factory    Factory
	strict     bool
	optional   bool
	layouts    []string
}

// WithDefault supplies a literal default. The literal must match the target
// kind; a mismatched literal is ignored and the accessor stays required.
func WithDefault(v any) Option {
	return func(c *config) { c.literal, c.hasLiteral = v, true }
}

// WithFactory supplies a default-producing function. A factory takes
// precedence over any literal default.
func WithFactory(fn Factory) Option {
	return func(c *config) { c.factory = fn }
}

// Strict makes identifier coercion surface parse failures as
// IdentifierParseError instead of falling back to the default source.
func Strict() Option {
	return func(c *config) { c.strict = true }
}

// AsOptional marks a composite attribute as allowed to be absent: with no
// other default source it defaults to nil instead of raising.
func AsOptional() Option {
	return func(c *config) { c.optional = true }
}

// WithLayouts overrides the ordered layout list tried by the time accessor.
func WithLayouts(layouts ...string) Option {
	return func(c *config) { c.layouts = layouts }
}

func applyOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// defaultSource holds the resolved default factory. A nil factory means the
// "raise" source: Default fails with ErrMissingDefault.
type defaultSource struct {
	factory Factory
}

func (s defaultSource) has() bool { return s.factory != nil }

func (s defaultSource) value() (any, error) {
	if s.factory == nil {
		return nil, ErrMissingDefault
	}
	return s.factory(), nil
}

// newDefaultSource resolves the default precedence chain:
// factory > literal adapted to the target kind > fallback > raise.
// The adapt function converts a literal once per call so mutable defaults
// never alias a shared container.
func newDefaultSource(c config, adapt func(any) (any, bool), fallback Factory) defaultSource {
	if c.factory != nil {
		return defaultSource{factory: c.factory}
	}

	if c.hasLiteral && adapt != nil {
		if _, ok := adapt(c.literal); ok {
			lit := c.literal
			return defaultSource{factory: func() any {
				v, _ := adapt(lit)
				return v
			}}
		}
	}

	if fallback != nil {
		return defaultSource{factory: fallback}
	}

	return defaultSource{}
}

// accessorBase carries the kind and default source shared by all accessors.
type accessorBase struct {
	kind     KindEnum
	defaults defaultSource
}

func (b *accessorBase) Kind() KindEnum        { return b.kind }
func (b *accessorBase) HasDefault() bool      { return b.defaults.has() }
func (b *accessorBase) Default() (any, error) { return b.defaults.value() }
