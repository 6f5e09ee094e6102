package re2post

import "unicode/utf8"

const (
	groupOpen   = '('
	groupClose  = ')'
	alternation = '|'
)

var quantifiers = map[rune]NodeKind{
	'*': Star,
	'+': Plus,
	'?': Optional,
}

func isQuantifier(ch rune) bool {
	_, ok := quantifiers[ch]
	return ok
}

func isControl(ch rune) bool {
	return ch == groupOpen || ch == groupClose || ch == alternation || isQuantifier(ch)
}

// groupContext is what the enclosing level had pending when a group opened.
type groupContext struct {
	alternations int
	atoms        int
}

type groupStack struct {
	items []groupContext
	limit int
}

// push reports false instead of growing past the limit.
func (gs *groupStack) push(ctx groupContext) bool {
	if len(gs.items) >= gs.limit {
		return false
	}
	gs.items = append(gs.items, ctx)
	return true
}

func (gs *groupStack) pop() groupContext {
	x := gs.items[len(gs.items)-1]
	gs.items = gs.items[:len(gs.items)-1]
	return x
}

func (gs *groupStack) hasElements() bool {
	return len(gs.items) > 0
}

// Converter rewrites infix patterns into postfix. It holds no per-call state
// and is safe for concurrent use.
type Converter struct {
	opts Options
}

func NewConverter(opts Options) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Converter{opts: opts.withDefaults()}, nil
}

func (c *Converter) Options() Options {
	return c.opts
}

var defaultConverter = &Converter{opts: DefaultOptions()}

// Convert rewrites pattern with the default options.
func Convert(pattern string) (string, error) {
	return defaultConverter.Convert(pattern)
}

// rewriter is the state of one conversion.
type rewriter struct {
	concat       rune
	alternations int
	atoms        int
	groups       groupStack
	out          []byte
}

// joinPending glues the previous pending atom to the one about to be emitted.
func (r *rewriter) joinPending() {
	if r.atoms > 1 {
		r.atoms--
		r.out = utf8.AppendRune(r.out, r.concat)
	}
}

// flushAtoms folds every pending atom of the current level into one operand.
func (r *rewriter) flushAtoms() {
	for r.atoms--; r.atoms > 0; r.atoms-- {
		r.out = utf8.AppendRune(r.out, r.concat)
	}
	r.atoms = 0
}

func (r *rewriter) flushAlternations() {
	for ; r.alternations > 0; r.alternations-- {
		r.out = append(r.out, byte(alternation))
	}
}

// Convert returns the postfix form of pattern. On rejection the result is
// empty and the error is a *RegexError.
func (c *Converter) Convert(pattern string) (string, error) {
	size := utf8.RuneCountInString(pattern)
	if size >= c.opts.MaxLength {
		return "", newError(InputTooLong, c.opts.MaxLength, "pattern has %d characters, the limit is %d", size, c.opts.MaxLength)
	}

	r := rewriter{
		concat: c.opts.ConcatOperator,
		groups: groupStack{limit: c.opts.MaxNestingDepth},
		out:    make([]byte, 0, 2*len(pattern)),
	}

	pos := 0
	for i, ch := range pattern {
		switch {
		case ch == groupOpen:
			r.joinPending()
			if !r.groups.push(groupContext{alternations: r.alternations, atoms: r.atoms}) {
				return "", newError(NestingTooDeep, pos, "group nesting is deeper than %d", c.opts.MaxNestingDepth)
			}
			r.alternations = 0
			r.atoms = 0
		case ch == alternation:
			if r.atoms == 0 {
				return "", newError(EmptyAlternative, pos, "'|' has no expression on its left")
			}
			r.flushAtoms()
			r.alternations++
		case ch == groupClose:
			if !r.groups.hasElements() {
				return "", newError(UnmatchedCloseParen, pos, "')' has no matching '('")
			}
			if r.atoms == 0 {
				return "", newError(EmptyAlternative, pos, "empty expression before ')'")
			}
			r.flushAtoms()
			r.flushAlternations()
			enclosing := r.groups.pop()
			r.alternations = enclosing.alternations
			r.atoms = enclosing.atoms + 1
		case isQuantifier(ch):
			if r.atoms == 0 {
				return "", newError(DanglingQuantifier, pos, "'%c' has nothing to repeat", ch)
			}
			r.out = append(r.out, byte(ch))
		default:
			// Atoms are copied byte for byte, invalid UTF-8 included.
			_, width := utf8.DecodeRuneInString(pattern[i:])
			r.joinPending()
			r.out = append(r.out, pattern[i:i+width]...)
			r.atoms++
		}
		pos++
	}

	if r.groups.hasElements() {
		return "", newError(UnmatchedOpenParen, size, "%d group(s) left open", len(r.groups.items))
	}
	if r.alternations > 0 && r.atoms == 0 {
		return "", newError(EmptyAlternative, size, "'|' has no expression on its right")
	}
	r.flushAtoms()
	r.flushAlternations()

	return string(r.out), nil
}
