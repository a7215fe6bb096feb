package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/pkg/showcase"
)

type componentsOptions struct {
	jsonOutput bool
	yamlOutput bool
}

type componentEntry struct {
	Name        string `json:"name" yaml:"name"`
	Family      string `json:"family" yaml:"family"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func newComponentsCmd(_ *rootFlags) *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the registered components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func runComponents(cmd *cobra.Command, opts *componentsOptions) error {
	reg, err := showcase.NewRegistry()
	if err != nil {
		return err
	}
	defs := reg.Definitions()

	entries := make([]componentEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, componentEntry{Name: def.Name, Family: def.Family, Description: def.Description})
	}

	switch {
	case opts.jsonOutput:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case opts.yamlOutput:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tDESCRIPTION")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, entry.Family, entry.Description)
	}
	return w.Flush()
}
