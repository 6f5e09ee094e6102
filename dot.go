package re2post

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/xerrors"
)

// WriteDot writes the tree as a Graphviz digraph. Nodes are numbered in
// postfix order, so the labels read left to right as the postfix sequence.
func WriteDot(w io.Writer, n *Node) error {
	if _, err := fmt.Fprintf(w, "digraph G {\n"); err != nil {
		return xerrors.Errorf("unable to write dot header: %w", err)
	}
	if n != nil {
		if _, err := dot(w, n, new(int)); err != nil {
			return xerrors.Errorf("unable to write dot graph: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "}\n"); err != nil {
		return xerrors.Errorf("unable to write dot footer: %w", err)
	}
	return nil
}

func dot(w io.Writer, n *Node, counter *int) (string, error) {
	var childNames []string
	for _, child := range n.Children {
		name, err := dot(w, child, counter)
		if err != nil {
			return "", err
		}
		childNames = append(childNames, name)
	}

	thisNodeName := fmt.Sprintf("n%d", *counter)
	*counter++

	shape := "circle"
	if n.is(Literal) {
		shape = "box"
	}
	if _, err := fmt.Fprintf(w, "%s [label=%s,shape=%s]\n", thisNodeName, strconv.Quote(string(n.Value)), shape); err != nil {
		return "", err
	}
	for _, childName := range childNames {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", thisNodeName, childName); err != nil {
			return "", err
		}
	}
	return thisNodeName, nil
}

// DumpDotGraphForRegex converts pattern and writes its expression tree.
func DumpDotGraphForRegex(w io.Writer, c *Converter, pattern string) error {
	postfix, err := c.Convert(pattern)
	if err != nil {
		return xerrors.Errorf("unable to convert %q: %w", pattern, err)
	}
	root, err := ParsePostfix(postfix, c.opts.ConcatOperator)
	if err != nil {
		return xerrors.Errorf("unable to read postfix %q: %w", postfix, err)
	}
	return WriteDot(w, root)
}
