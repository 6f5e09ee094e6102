package convert

import (
	"fmt"

	"github.com/rhaeguard/re2post"
	"github.com/rhaeguard/re2post/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func ConvertCommand(cp **re2post.Converter) *cobra.Command {
	return &cobra.Command{
		Use:   "convert PATTERN...",
		Short: "Print the postfix form of each pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run(cp),
	}
}

func run(cp **re2post.Converter) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, pattern := range args {
			postfix, err := (*cp).Convert(pattern)
			if err != nil {
				return xerrors.Errorf("unable to convert %q: %w", pattern, err)
			}
			logger.Log.Debugw("converted", "pattern", pattern, "postfix", postfix)
			fmt.Fprintln(cmd.OutOrStdout(), postfix)
		}
		return nil
	}
}
