// Package format names the output styles of an OFX 1.x SGML writer.
package format

import (
	"errors"
	"fmt"

	"github.com/signadot/ofx-sgml/sgml"
)

type Style int

const (
	// CompactStyle writes everything on one line with unclosed elements.
	CompactStyle Style = iota
	// ClosedStyle is CompactStyle with element end tags.
	ClosedStyle
	// PrettyStyle writes one tag or value per line, indented and closed.
	PrettyStyle
)

var ErrBadStyle = errors.New("bad style")

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"c":       CompactStyle,
		"compact": CompactStyle,
		"x":       ClosedStyle,
		"closed":  ClosedStyle,
		"p":       PrettyStyle,
		"pretty":  PrettyStyle,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case CompactStyle:
		return []byte("compact"), nil
	case ClosedStyle:
		return []byte("closed"), nil
	case PrettyStyle:
		return []byte("pretty"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// Config returns the writer configuration for the style. Unknown styles
// get the writer's default configuration.
func (s Style) Config() sgml.Config {
	switch s {
	case CompactStyle:
		return sgml.Config{}
	case ClosedStyle:
		return sgml.Config{AlwaysCloseElement: true}
	case PrettyStyle:
		return sgml.Config{
			WriteAttributesOnNewLine: true,
			WriteValuesOnNewLine:     true,
			AlwaysCloseElement:       true,
			TabLength:                sgml.DefaultTabLength,
		}
	default:
		return sgml.DefaultConfig()
	}
}

// Option returns an sgml.Option applying the style's configuration.
func (s Style) Option() sgml.Option {
	return sgml.WithConfig(s.Config())
}

// AllStyles returns all styles in preference order.
func AllStyles() []Style {
	return []Style{CompactStyle, ClosedStyle, PrettyStyle}
}
