package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML is a kong.ConfigurationLoader reading flag values from a YAML
// mapping. Keys are flag names, either as written on the command line
// ("fail-on-bad-urls") or with underscores ("fail_on_bad_urls").
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid YAML configuration: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if raw, ok := values[flag.Name]; ok {
			return raw, nil
		}
		if raw, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return raw, nil
		}
		return nil, nil
	}
	return f, nil
}
