package re2post

import "unicode/utf8"

const (
	// DefaultMaxLength is half of the 8000 symbol working budget: every atom
	// can at most double the output through inserted concatenations.
	DefaultMaxLength       = 4000
	DefaultMaxNestingDepth = 100
	DefaultConcatOperator  = '.'
)

// Options configures a Converter. Zero values fall back to the defaults.
type Options struct {
	// MaxLength rejects patterns of this many characters or more without scanning them.
	MaxLength int
	// MaxNestingDepth is the deepest group nesting that is still accepted.
	MaxNestingDepth int
	// ConcatOperator is the synthetic concatenation token written to the output.
	ConcatOperator rune
}

func DefaultOptions() Options {
	return Options{
		MaxLength:       DefaultMaxLength,
		MaxNestingDepth: DefaultMaxNestingDepth,
		ConcatOperator:  DefaultConcatOperator,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	if o.MaxNestingDepth == 0 {
		o.MaxNestingDepth = DefaultMaxNestingDepth
	}
	if o.ConcatOperator == 0 {
		o.ConcatOperator = DefaultConcatOperator
	}
	return o
}

func (o Options) Validate() error {
	if o.MaxLength < 0 {
		return newError(InvalidOptions, 0, "max length must not be negative, got %d", o.MaxLength)
	}
	if o.MaxNestingDepth < 0 {
		return newError(InvalidOptions, 0, "max nesting depth must not be negative, got %d", o.MaxNestingDepth)
	}
	if o.ConcatOperator != 0 && !utf8.ValidRune(o.ConcatOperator) {
		return newError(InvalidOptions, 0, "concatenation operator %U is not a valid character", o.ConcatOperator)
	}
	if isControl(o.ConcatOperator) {
		return newError(InvalidOptions, 0, "'%c' is a control character and cannot be the concatenation operator", o.ConcatOperator)
	}
	return nil
}
