package cmd

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/blackwood/internal/config"
)

// newConfigCmd groups configuration-related subcommands similar to gh-style CLIs.
// Invoked alone it prints the merged configuration.
func newConfigCmd(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the merged blackwood configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := encodeConfig(root.cfg, output)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml|toml")

	cmd.AddCommand(&cobra.Command{
		Use:   "default",
		Short: "Print the built-in default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(config.DefaultConfigYAML())
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "locales",
		Short: "List the available message catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range root.cfg.LocaleNames() {
				marker := " "
				if name == root.run.Locale {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	})
	return cmd
}

func encodeConfig(cfg config.Config, output string) ([]byte, error) {
	switch output {
	case "yaml", "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode config as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode config as YAML: %w", err)
		}
		return buf.Bytes(), nil
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("encode config as TOML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("invalid output for config: %s (use yaml|toml)", output)
	}
}
