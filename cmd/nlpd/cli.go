package main

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nlpd/internal/config"
)

// newRootCmd builds the command tree. Running nlpd without a subcommand
// serves the HTTP API.
func newRootCmd() *cobra.Command { return newRootCmdWith(viper.New()) }

// newRootCmdWith constructs the command tree with flags bound into v.
func newRootCmdWith(v *viper.Viper) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "nlpd",
		Short:         "Named-entity and part-of-speech tagging over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is normal outside development.
			_ = godotenv.Load()
			v.SetEnvPrefix("NLPD")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cfgPath, v)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	pf.String(config.KeyModelsDir, config.DefaultModelsDir, "Directory holding custom model directories")
	pf.String(config.KeyModel, "", "Model name under --models-dir (empty = built-in English model)")
	pf.String(config.KeyLogLevel, config.DefaultLogLevel, "Log level: debug|info|warn|error")
	pf.String(config.KeyLogFormat, config.DefaultLogFormat, "Log format: json|console")

	f := root.Flags()
	f.String(config.KeyAddr, config.DefaultAddr, "HTTP listen address, e.g. :8080")
	f.Int(config.KeyMaxInflight, 0, "Concurrent analyses (0 = number of CPUs, 1 = serialize)")
	f.Int(config.KeyMaxQueueDepth, 0, "Requests allowed to wait for an analysis slot (0 = 32)")
	f.Int(config.KeyMaxWaitMS, 0, "Maximum admission wait in milliseconds (0 = 30000)")
	f.Int64(config.KeyMaxBodyBytes, config.DefaultMaxBodyBytes, "Maximum request body size in bytes")
	f.String(config.KeyCORSOrigins, "*", "Comma separated list of allowed CORS origins")

	root.AddCommand(newAnalyzeCmd(v, &cfgPath), newQueryCmd())
	return root
}

// resolveConfig layers flags and NLPD_* env over the optional config file,
// then applies defaults.
func resolveConfig(path string, v *viper.Viper) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	cfg = config.Overlay(cfg, v).WithDefaults()
	return cfg, cfg.Validate()
}
