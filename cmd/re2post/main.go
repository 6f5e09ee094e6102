package main

import (
	"os"

	"github.com/rhaeguard/re2post"
	"github.com/rhaeguard/re2post/cmd/re2post/batch"
	"github.com/rhaeguard/re2post/cmd/re2post/config"
	"github.com/rhaeguard/re2post/cmd/re2post/convert"
	"github.com/rhaeguard/re2post/cmd/re2post/tree"
	"github.com/rhaeguard/re2post/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var (
	defaultLogLevel  = "info"
	defaultLogConfig = "console"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var cp *re2post.Converter
	logLevel := defaultLogLevel
	logConfig := defaultLogConfig
	configPath := ""
	maxLength := 0
	maxDepth := 0

	root := &cobra.Command{
		Use:          "re2post",
		Short:        "Rewrite infix regular expressions into postfix",
		Example:      "./re2post convert '(a|b)*c'",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return xerrors.Errorf("unsupported value \"%s\" for --log-level: %w", logLevel, err)
			}
			loggerConfig, err := logger.NewConfig(logConfig, level)
			if err != nil {
				return xerrors.Errorf("unsupported value \"%s\" for --log-config: %w", logConfig, err)
			}
			zl, err := loggerConfig.Build()
			if err != nil {
				return xerrors.Errorf("unable to build logger: %w", err)
			}
			logger.Log = zl.Sugar()

			opts := re2post.Options{}
			if configPath != "" {
				opts, err = config.OptionsFromYaml(configPath)
				if err != nil {
					return xerrors.Errorf("unable to load options: %w", err)
				}
			}
			if cmd.Flags().Changed("max-length") {
				opts.MaxLength = maxLength
			}
			if cmd.Flags().Changed("max-depth") {
				opts.MaxNestingDepth = maxDepth
			}

			cp, err = re2post.NewConverter(opts)
			if err != nil {
				return xerrors.Errorf("invalid options: %w", err)
			}
			effective := cp.Options()
			logger.Log.Debugw("converter ready",
				"max_length", effective.MaxLength,
				"max_nesting_depth", effective.MaxNestingDepth,
				"concat_operator", string(effective.ConcatOperator))
			return nil
		},
	}

	root.AddCommand(convert.ConvertCommand(&cp))
	root.AddCommand(batch.BatchCommand(&cp))
	root.AddCommand(tree.TreeCommand(&cp))

	root.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "Specifies logging level for output logs (\"panic\", \"fatal\", \"error\", \"warning\", \"info\", \"debug\")")
	root.PersistentFlags().StringVar(&logConfig, "log-config", defaultLogConfig, "Specifies logging config for output logs (\"console\", \"json\", \"minimal\")")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to yaml file with converter options")
	root.PersistentFlags().IntVar(&maxLength, "max-length", re2post.DefaultMaxLength, "reject patterns of this many characters or more")
	root.PersistentFlags().IntVar(&maxDepth, "max-depth", re2post.DefaultMaxNestingDepth, "deepest accepted group nesting")
	return root
}
