package re2post

import (
	"fmt"
	"strings"
)

type NodeKind uint8

const (
	Literal   NodeKind = iota // any non-operator character
	Concat                    // explicit concatenation operator
	Alternate                 // |
	Star                      // *
	Plus                      // +
	Optional                  // ?
)

func (k NodeKind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Concat:
		return "Concat"
	case Alternate:
		return "Alternate"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Optional:
		return "Optional"
	}
	return fmt.Sprintf("NodeKind(%d)", uint8(k))
}

// Node is one fragment of a postfix expression, as a Thompson builder would
// see it after popping its operands.
type Node struct {
	Kind     NodeKind
	Value    rune
	Children []*Node
}

func (n *Node) is(kind NodeKind) bool {
	return n.Kind == kind
}

func (n *Node) isQuantified() bool {
	return n.is(Star) || n.is(Plus) || n.is(Optional)
}

type nodeStack struct {
	nodes []*Node
}

func (ns *nodeStack) push(n *Node) {
	ns.nodes = append(ns.nodes, n)
}

func (ns *nodeStack) pop() *Node {
	x := ns.nodes[len(ns.nodes)-1]
	ns.nodes = ns.nodes[:len(ns.nodes)-1]
	return x
}

func (ns *nodeStack) size() int {
	return len(ns.nodes)
}

// ParsePostfix reads a postfix sequence back into a tree. concat is the
// operator the sequence was produced with. An empty sequence yields nil.
func ParsePostfix(postfix string, concat rune) (*Node, error) {
	stack := nodeStack{}
	pos := 0
	for _, ch := range postfix {
		switch {
		case ch == concat || ch == alternation:
			if stack.size() < 2 {
				return nil, newError(MalformedPostfix, pos, "'%c' needs two operands, have %d", ch, stack.size())
			}
			right := stack.pop()
			left := stack.pop()
			kind := Alternate
			if ch == concat {
				kind = Concat
			}
			stack.push(&Node{Kind: kind, Value: ch, Children: []*Node{left, right}})
		case isQuantifier(ch):
			if stack.size() < 1 {
				return nil, newError(MalformedPostfix, pos, "'%c' needs an operand", ch)
			}
			stack.push(&Node{Kind: quantifiers[ch], Value: ch, Children: []*Node{stack.pop()}})
		case ch == groupOpen || ch == groupClose:
			return nil, newError(MalformedPostfix, pos, "'%c' cannot appear in postfix", ch)
		default:
			stack.push(&Node{Kind: Literal, Value: ch})
		}
		pos++
	}

	switch stack.size() {
	case 0:
		return nil, nil
	case 1:
		return stack.pop(), nil
	}
	return nil, newError(MalformedPostfix, pos, "%d operands left without an operator", stack.size())
}

// Infix renders the tree fully parenthesized: every binary node is wrapped,
// quantifiers follow their operand directly. Converting the result again
// gives back the same postfix.
func (n *Node) Infix() string {
	var sb strings.Builder
	n.writeInfix(&sb)
	return sb.String()
}

func (n *Node) writeInfix(sb *strings.Builder) {
	switch {
	case n.is(Literal):
		sb.WriteRune(n.Value)
	case n.isQuantified():
		n.Children[0].writeInfix(sb)
		sb.WriteRune(n.Value)
	case n.is(Concat):
		sb.WriteRune(groupOpen)
		n.Children[0].writeInfix(sb)
		n.Children[1].writeInfix(sb)
		sb.WriteRune(groupClose)
	case n.is(Alternate):
		sb.WriteRune(groupOpen)
		n.Children[0].writeInfix(sb)
		sb.WriteRune(alternation)
		n.Children[1].writeInfix(sb)
		sb.WriteRune(groupClose)
	}
}

// Postfix emits the tree back in postfix order.
func (n *Node) Postfix() string {
	var sb strings.Builder
	n.walk(func(node *Node) {
		sb.WriteRune(node.Value)
	})
	return sb.String()
}

// walk visits children before their parent.
func (n *Node) walk(visit func(*Node)) {
	for _, child := range n.Children {
		child.walk(visit)
	}
	visit(n)
}

// Stats counts the tokens of a postfix sequence by role.
type Stats struct {
	Atoms          int
	Concatenations int
	Alternations   int
	Quantifiers    int
}

func (s Stats) Total() int {
	return s.Atoms + s.Concatenations + s.Alternations + s.Quantifiers
}

func CountTokens(postfix string, concat rune) Stats {
	var s Stats
	for _, ch := range postfix {
		switch {
		case ch == concat:
			s.Concatenations++
		case ch == alternation:
			s.Alternations++
		case isQuantifier(ch):
			s.Quantifiers++
		default:
			s.Atoms++
		}
	}
	return s
}
