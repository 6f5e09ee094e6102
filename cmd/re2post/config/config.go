package config

import (
	"os"
	"unicode/utf8"

	"github.com/rhaeguard/re2post"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// file mirrors re2post.Options; the operator is a string so it can be
// written as a plain character in yaml.
type file struct {
	MaxLength       int    `yaml:"max_length"`
	MaxNestingDepth int    `yaml:"max_nesting_depth"`
	ConcatOperator  string `yaml:"concat_operator"`
}

func OptionsFromYaml(path string) (re2post.Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return re2post.Options{}, xerrors.Errorf("unable to read yaml config file: %w", err)
	}
	opts, err := ParseOptions(raw)
	if err != nil {
		return re2post.Options{}, xerrors.Errorf("unable to parse yaml config %s: %w", path, err)
	}
	return opts, nil
}

func ParseOptions(raw []byte) (re2post.Options, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return re2post.Options{}, xerrors.Errorf("unable to parse yaml: %w", err)
	}

	opts := re2post.Options{
		MaxLength:       f.MaxLength,
		MaxNestingDepth: f.MaxNestingDepth,
	}
	if f.ConcatOperator != "" {
		if utf8.RuneCountInString(f.ConcatOperator) != 1 {
			return re2post.Options{}, xerrors.Errorf("concat_operator must be a single character, got %q", f.ConcatOperator)
		}
		opts.ConcatOperator, _ = utf8.DecodeRuneInString(f.ConcatOperator)
	}
	if err := opts.Validate(); err != nil {
		return re2post.Options{}, xerrors.Errorf("invalid options: %w", err)
	}
	return opts, nil
}
