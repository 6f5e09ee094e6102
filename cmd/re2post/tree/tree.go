package tree

import (
	"fmt"

	"github.com/rhaeguard/re2post"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func TreeCommand(cp **re2post.Converter) *cobra.Command {
	var asDot bool
	treeCommand := &cobra.Command{
		Use:   "tree PATTERN",
		Short: "Show the expression tree behind the postfix form",
		Args:  cobra.ExactArgs(1),
		RunE:  run(cp, &asDot),
	}
	treeCommand.Flags().BoolVar(&asDot, "dot", false, "print a Graphviz digraph instead of text")
	return treeCommand
}

func run(cp **re2post.Converter, asDot *bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c := *cp
		out := cmd.OutOrStdout()
		if *asDot {
			return re2post.DumpDotGraphForRegex(out, c, args[0])
		}

		postfix, err := c.Convert(args[0])
		if err != nil {
			return xerrors.Errorf("unable to convert %q: %w", args[0], err)
		}
		root, err := re2post.ParsePostfix(postfix, c.Options().ConcatOperator)
		if err != nil {
			return xerrors.Errorf("unable to read postfix %q: %w", postfix, err)
		}
		stats := re2post.CountTokens(postfix, c.Options().ConcatOperator)

		infix := ""
		if root != nil {
			infix = root.Infix()
		}
		fmt.Fprintf(out, "postfix:      %s\n", postfix)
		fmt.Fprintf(out, "infix:        %s\n", infix)
		fmt.Fprintf(out, "atoms:        %d\n", stats.Atoms)
		fmt.Fprintf(out, "concatenated: %d\n", stats.Concatenations)
		fmt.Fprintf(out, "alternated:   %d\n", stats.Alternations)
		fmt.Fprintf(out, "quantified:   %d\n", stats.Quantifiers)
		return nil
	}
}
