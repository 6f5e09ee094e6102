package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rhaeguard/re2post"
	"github.com/rhaeguard/re2post/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func BatchCommand(cp **re2post.Converter) *cobra.Command {
	var workers int
	batchCommand := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Convert one pattern per line from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run(cp, &workers),
	}
	batchCommand.Flags().IntVar(&workers, "workers", 4, "how many patterns are converted at once, 0 for no limit")
	return batchCommand
}

func run(cp **re2post.Converter, workers *int) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return xerrors.Errorf("unable to open patterns file: %w", err)
			}
			defer f.Close()
			in = f
		}

		patterns, err := readLines(in)
		if err != nil {
			return xerrors.Errorf("unable to read patterns: %w", err)
		}

		results, err := re2post.ConvertAll(cmd.Context(), *cp, patterns, *workers)
		if err != nil {
			return xerrors.Errorf("batch interrupted: %w", err)
		}

		rejected := 0
		out := cmd.OutOrStdout()
		for _, result := range results {
			if result.Err != nil {
				rejected++
				logger.Log.Warnw("pattern rejected", "pattern", result.Pattern, "error", result.Err)
				fmt.Fprintf(out, "%s\terror: %v\n", result.Pattern, result.Err)
				continue
			}
			fmt.Fprintf(out, "%s\t%s\n", result.Pattern, result.Postfix)
		}
		logger.Log.Infof("converted %d pattern(s), %d rejected", len(results)-rejected, rejected)
		return nil
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
