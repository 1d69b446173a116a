package prettyprint

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the formatting options of one run.
type Config struct {
	// Indentation
	IndentChar  string `toml:"indent_char" mapstructure:"indent_char" validate:"len=1,ascii"`
	IndentWidth int    `toml:"indent_width" mapstructure:"indent_width" validate:"gte=0,lte=16"`

	// Input
	InputFormat InputFormat `toml:"input_format" mapstructure:"input_format" validate:"oneof=auto html xhtml markdown"`

	// Subtree selection, at most one of the two
	SelectCSS   string `toml:"select_css" mapstructure:"select_css"`
	SelectXPath string `toml:"select_xpath" mapstructure:"select_xpath" validate:"excluded_with=SelectCSS"`

	// Output file path, empty for stdout
	Output string `toml:"output" mapstructure:"output"`
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() *Config {
	return &Config{
		IndentChar:  " ",
		IndentWidth: 2,
		InputFormat: FormatAuto,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and compiles the CSS selector.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return NewConfigError("invalid configuration", err)
	}
	if c.SelectCSS != "" {
		if err := ValidateCSS(c.SelectCSS); err != nil {
			return NewConfigError(fmt.Sprintf("invalid select_css %q", c.SelectCSS), err)
		}
	}
	return nil
}

// NewFormatter creates a formatter using the configured indentation.
func (c *Config) NewFormatter(opts ...Option) *Formatter {
	indent := byte(' ')
	if c.IndentChar != "" {
		indent = c.IndentChar[0]
	}
	return NewFormatter(append([]Option{WithIndent(indent, c.IndentWidth)}, opts...)...)
}
