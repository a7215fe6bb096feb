package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/internal/config"
	"github.com/goliatone/go-uikit/internal/logging"
)

type rootFlags struct {
	configPath string
	locale     string
	theme      string
	variant    string
	scripts    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "uikit",
		Short:         "Render and preview the go-uikit Tailwind components",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&flags.locale, "locale", "", "Label locale (fr or en)")
	pf.StringVar(&flags.theme, "theme", "", "Theme manifest file")
	pf.StringVar(&flags.variant, "variant", "", "Theme variant")
	pf.StringVar(&flags.scripts, "scripts", "", "Script placement (inline or deferred)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format (json or console)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newComponentsCmd(flags))
	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

// loadConfig reads the configuration, then applies the flags the user set.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("locale") {
		cfg.Locale = flags.locale
	}
	if changed("theme") {
		cfg.Theme.Manifest = flags.theme
	}
	if changed("variant") {
		cfg.Theme.Variant = flags.variant
	}
	if changed("scripts") {
		cfg.Scripts = flags.scripts
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	return logging.New(logging.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Format == "console",
		Writer:        cmd.ErrOrStderr(),
	})
}
