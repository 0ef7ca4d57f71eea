package fracjson

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadOption is wrapped by errors reporting an unknown option value.
var ErrBadOption = errors.New("fracjson: bad option")

// EolStyle selects the end-of-line sequence.
type EolStyle int

const (
	EOLDefault EolStyle = iota
	EOLLF
	EOLCRLF
)

// CommentPolicy selects what happens to comments.
type CommentPolicy int

const (
	CommentsPreserve CommentPolicy = iota
	CommentsRemove
)

// NumberListAlignment selects how sibling numbers are aligned.
type NumberListAlignment int

const (
	AlignNone NumberListAlignment = iota
	AlignLeft
	AlignDecimal
)

// TableCommaPlacement selects where row separators go in table layout.
type TableCommaPlacement int

const (
	CommaEndOfLine TableCommaPlacement = iota
	CommaNextLine
)

// Options controls layout decisions and output punctuation.
type Options struct {
	// EOL selects "\n" (default, lf) or "\r\n" (crlf).
	EOL EolStyle `yaml:"eol"`
	// MaxTotalLineLength bounds the width of inlined containers. Default 120.
	MaxTotalLineLength int `yaml:"max-total-line-length"`
	// MaxInlineComplexity is the deepest nesting rendered on one line. Default 1.
	MaxInlineComplexity int `yaml:"max-inline-complexity"`
	// MaxCompactArrayComplexity bounds arrays packed several items per line. Default 2.
	MaxCompactArrayComplexity int `yaml:"max-compact-array-complexity"`
	// MaxTableRowComplexity bounds containers rendered as tables. Default 1.
	MaxTableRowComplexity int `yaml:"max-table-row-complexity"`
	// MaxPropNamePadding caps the width property names are padded to. Default 40.
	MaxPropNamePadding int `yaml:"max-prop-name-padding"`
	// ColonBeforePropNamePadding writes the colon right after the name and
	// pads after it instead of before it.
	ColonBeforePropNamePadding bool `yaml:"colon-before-prop-name-padding"`
	// TableCommaPlacement places row commas at line end or at the next line start.
	TableCommaPlacement TableCommaPlacement `yaml:"table-comma-placement"`
	// MinCompactArrayRowItems is the fewest items an array needs to be packed. Default 4.
	MinCompactArrayRowItems int `yaml:"min-compact-array-row-items"`
	// AlwaysExpandDepth expands every container nested shallower than it. Default 0.
	AlwaysExpandDepth int `yaml:"always-expand-depth"`

	NestedBracketPadding bool `yaml:"nested-bracket-padding"`
	SimpleBracketPadding bool `yaml:"simple-bracket-padding"`
	ColonPadding         bool `yaml:"colon-padding"`
	CommaPadding         bool `yaml:"comma-padding"`
	CommentPadding       bool `yaml:"comment-padding"`

	NumberListAlignment NumberListAlignment `yaml:"number-list-alignment"`

	// IndentSpaces is the width of one indentation level. Default 4.
	IndentSpaces int `yaml:"indent-spaces"`
	// UseTabToIndent indents with one tab per level.
	UseTabToIndent bool `yaml:"use-tab-to-indent"`
	// PrefixString is written at the start of every output line.
	PrefixString string `yaml:"prefix-string"`

	CommentPolicy       CommentPolicy `yaml:"comment-policy"`
	PreserveBlankLines  bool          `yaml:"preserve-blank-lines"`
	AllowTrailingCommas bool          `yaml:"allow-trailing-commas"`

	// Palette names the colour palette used by Pretty and PrettyTo. "none"
	// disables colouring; empty selects "default".
	Palette string `yaml:"palette"`
	// ForceColor colours output even when the writer is not a terminal.
	ForceColor bool `yaml:"force-color"`
	// Unwrap replaces strings that hold JSON documents with the parsed
	// document, up to MaxNestedJSONDepth levels.
	Unwrap bool `yaml:"unwrap"`
}

// DefaultOptions holds the fallback configuration.
var DefaultOptions = &Options{
	EOL:                        EOLDefault,
	MaxTotalLineLength:         120,
	MaxInlineComplexity:        1,
	MaxCompactArrayComplexity:  2,
	MaxTableRowComplexity:      1,
	MaxPropNamePadding:         40,
	ColonBeforePropNamePadding: false,
	TableCommaPlacement:        CommaEndOfLine,
	MinCompactArrayRowItems:    4,
	AlwaysExpandDepth:          0,
	NestedBracketPadding:       true,
	SimpleBracketPadding:       true,
	ColonPadding:               true,
	CommaPadding:               true,
	CommentPadding:             true,
	NumberListAlignment:        AlignNone,
	IndentSpaces:               4,
	UseTabToIndent:             false,
	PrefixString:               "",
	CommentPolicy:              CommentsPreserve,
	PreserveBlankLines:         true,
	AllowTrailingCommas:        false,
}

// EOLString returns the end-of-line sequence selected by o.EOL.
func (o *Options) EOLString() string {
	if o.EOL == EOLCRLF {
		return "\r\n"
	}
	return "\n"
}

// StrictJSON returns a copy of o producing plain JSON: comments removed,
// no trailing commas, LF line endings.
func (o *Options) StrictJSON() *Options {
	c := *o
	c.CommentPolicy = CommentsRemove
	c.AllowTrailingCommas = false
	c.EOL = EOLLF
	return &c
}

func (o *Options) preserveComments() bool {
	return o.CommentPolicy == CommentsPreserve
}

// enumNames backs the text encoding of every option enum.
type enumNames []string

func (e enumNames) parse(kind, v string) (int, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range e {
		if name == v {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q (use one of: %s)", ErrBadOption, kind, v, strings.Join(e, ", "))
}

func (e enumNames) name(i int) string {
	if i >= 0 && i < len(e) {
		return e[i]
	}
	return fmt.Sprintf("<invalid %d>", i)
}

var (
	eolNames       = enumNames{"default", "lf", "crlf"}
	commentNames   = enumNames{"preserve", "remove"}
	alignNames     = enumNames{"none", "left", "decimal"}
	placementNames = enumNames{"end-of-line", "next-line"}
)

func (e EolStyle) String() string { return eolNames.name(int(e)) }

// Type implements pflag.Value.
func (e *EolStyle) Type() string { return "eol" }

// Set implements pflag.Value.
func (e *EolStyle) Set(v string) error {
	i, err := eolNames.parse("eol", v)
	if err != nil {
		return err
	}
	*e = EolStyle(i)
	return nil
}

func (e EolStyle) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EolStyle) UnmarshalText(d []byte) error { return e.Set(string(d)) }

func (c CommentPolicy) String() string { return commentNames.name(int(c)) }

// Type implements pflag.Value.
func (c *CommentPolicy) Type() string { return "policy" }

// Set implements pflag.Value.
func (c *CommentPolicy) Set(v string) error {
	i, err := commentNames.parse("comment policy", v)
	if err != nil {
		return err
	}
	*c = CommentPolicy(i)
	return nil
}

func (c CommentPolicy) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *CommentPolicy) UnmarshalText(d []byte) error { return c.Set(string(d)) }

func (a NumberListAlignment) String() string { return alignNames.name(int(a)) }

// Type implements pflag.Value.
func (a *NumberListAlignment) Type() string { return "alignment" }

// Set implements pflag.Value.
func (a *NumberListAlignment) Set(v string) error {
	i, err := alignNames.parse("number alignment", v)
	if err != nil {
		return err
	}
	*a = NumberListAlignment(i)
	return nil
}

func (a NumberListAlignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *NumberListAlignment) UnmarshalText(d []byte) error { return a.Set(string(d)) }

func (t TableCommaPlacement) String() string { return placementNames.name(int(t)) }

// Type implements pflag.Value.
func (t *TableCommaPlacement) Type() string { return "placement" }

// Set implements pflag.Value.
func (t *TableCommaPlacement) Set(v string) error {
	i, err := placementNames.parse("table comma placement", v)
	if err != nil {
		return err
	}
	*t = TableCommaPlacement(i)
	return nil
}

func (t TableCommaPlacement) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TableCommaPlacement) UnmarshalText(d []byte) error { return t.Set(string(d)) }
