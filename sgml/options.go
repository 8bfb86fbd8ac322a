package sgml

// DefaultTabLength is the number of spaces per aggregate level used when
// no tab length is configured.
const DefaultTabLength = 4

// Config holds the formatting settings of a Writer.
type Config struct {
	// WriteAttributesOnNewLine writes a line break after every aggregate
	// start tag, every aggregate end tag and every element end tag.
	WriteAttributesOnNewLine bool

	// WriteValuesOnNewLine puts element values on their own line, one
	// level deeper than the element tag.
	WriteValuesOnNewLine bool

	// AlwaysCloseElement writes an end tag after every element value.
	AlwaysCloseElement bool

	// TabLength is the number of spaces per aggregate level. 0 disables
	// indentation.
	TabLength int
}

// DefaultConfig returns the configuration used by NewWriter and
// NewSinkWriter when no options are given.
func DefaultConfig() Config {
	return Config{TabLength: DefaultTabLength}
}

// Option configures a Writer.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithTabLength sets the indentation width per aggregate level.
func WithTabLength(n int) Option {
	return func(c *Config) {
		c.TabLength = n
	}
}

// WithAttributesOnNewLine sets Config.WriteAttributesOnNewLine.
func WithAttributesOnNewLine(v bool) Option {
	return func(c *Config) {
		c.WriteAttributesOnNewLine = v
	}
}

// WithValuesOnNewLine sets Config.WriteValuesOnNewLine.
func WithValuesOnNewLine(v bool) Option {
	return func(c *Config) {
		c.WriteValuesOnNewLine = v
	}
}

// WithAlwaysCloseElement sets Config.AlwaysCloseElement.
func WithAlwaysCloseElement(v bool) Option {
	return func(c *Config) {
		c.AlwaysCloseElement = v
	}
}
