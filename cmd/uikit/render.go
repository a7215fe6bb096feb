package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit"
	"github.com/goliatone/go-uikit/pkg/render"
)

type renderOptions struct {
	out       string
	component string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the showcase page or a single component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.component, "component", "", "Render only the named component fragment")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions) error {
	cfg, err := loadConfig(cmd, rootFlags)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	reg, err := uikit.NewRegistry()
	if err != nil {
		return err
	}

	var html string
	if name := strings.TrimSpace(opts.component); name != "" {
		html, err = uikit.RenderComponent(uikit.NewContext(renderOpts...), reg, name)
	} else {
		html, err = uikit.RenderShowcase(uikit.NewContext(append(renderOpts, render.WithDeferredScripts())...), reg)
	}
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(opts.out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	log.WithFields(map[string]any{"path": opts.out, "bytes": len(html)}).Info("rendered")
	return nil
}
