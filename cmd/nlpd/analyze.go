package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nlpd/pkg/client"
	"nlpd/pkg/types"
)

// newAnalyzeCmd runs extraction in-process and prints the spans as JSON.
func newAnalyzeCmd(v *viper.Viper, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "analyze [text]",
		Short:   "Extract spans locally (text from args or stdin)",
		Example: "  nlpd analyze \"Apple was founded by Steve Jobs.\"\n  echo 'Paris is lovely' | nlpd analyze",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cfg, err := resolveConfig(*cfgPath, v)
			if err != nil {
				return err
			}
			host, err := loadHost(cfg, newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			ex, err := host.Extract(cmdContext(cmd), text)
			if err != nil {
				return err
			}
			return printSpans(cmd.OutOrStdout(), ex.Spans)
		},
	}
}

// newQueryCmd sends text to a running server.
func newQueryCmd() *cobra.Command {
	var endpoint string
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:     "query [text]",
		Short:   "Send text to a running nlpd server",
		Example: "  nlpd query --endpoint http://localhost:8080 \"Apple was founded by Steve Jobs.\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmdContext(cmd), timeout)
			defer cancel()
			spans, err := client.New(endpoint).NER(ctx, text)
			if err != nil {
				return err
			}
			return printSpans(cmd.OutOrStdout(), spans)
		},
	}
	def := os.Getenv("NLP_API_ENDPOINT")
	if def == "" {
		def = "http://localhost:8080"
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", def, "Base URL of the nlpd server (defaults NLP_API_ENDPOINT)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// inputText joins args, or reads all of stdin when no args are given.
func inputText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func printSpans(w io.Writer, spans []types.Span) error {
	if spans == nil {
		spans = []types.Span{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(spans)
}
