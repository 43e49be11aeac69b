package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	name       string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "gotext" which uses github.com/go-text/typesetting.
//
// Built-in alternatives are "sfnt" (seehuhn.de/go/sfnt) and "ximage"
// (golang.org/x/image, names only). Custom parsers can be registered with
// RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithName overrides the display name of the source. It is used for
// diagnostics only and does not affect the parsed family name.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}
