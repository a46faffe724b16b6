package main

import (
	"fmt"
	"io"

	"github.com/keepmind9/onechat/internal/config"
	"github.com/keepmind9/onechat/pkg/onechat"
	"github.com/spf13/cobra"
)

// ValidationResult represents the validation result
type ValidationResult struct {
	Valid          bool     `json:"valid"`
	Config         string   `json:"config"`
	BaseURL        string   `json:"base_url,omitempty"`
	Token          string   `json:"token,omitempty"`
	DefaultTo      string   `json:"default_to,omitempty"`
	DefaultBotID   string   `json:"default_bot_id,omitempty"`
	ConnectTimeout string   `json:"connect_timeout,omitempty"`
	ReadTimeout    string   `json:"read_timeout,omitempty"`
	Errors         []string `json:"errors,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var jsonFormat bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate onechat configuration",
		Long: `Load the configuration the other commands would use and report problems
without contacting the API.

This command checks:
  - YAML syntax and ${VAR} references
  - Token presence
  - Base URL, timeouts and logging settings

Exit codes:
  0 - Configuration is valid
  1 - Configuration has errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath()
			source := path
			if source == "" {
				source = "(environment)"
			}

			cfg, err := config.LoadConfig(path)
			if err != nil {
				result := ValidationResult{
					Valid:  false,
					Config: source,
					Errors: []string{err.Error()},
				}
				if err := outputValidationResult(cmd.OutOrStdout(), result, jsonFormat); err != nil {
					return err
				}
				return errResultFailed
			}

			result := ValidationResult{
				Valid:          true,
				Config:         source,
				BaseURL:        cfg.BaseURL,
				Token:          onechat.MaskToken(cfg.Token),
				DefaultTo:      cfg.DefaultTo,
				DefaultBotID:   cfg.DefaultBotID,
				ConnectTimeout: cfg.HTTP.ConnectTimeout,
				ReadTimeout:    cfg.HTTP.ReadTimeout,
				Warnings:       validateConfigDetails(cfg),
			}
			return outputValidationResult(cmd.OutOrStdout(), result, jsonFormat)
		},
	}

	cmd.Flags().BoolVar(&jsonFormat, "json", false, "Output in JSON format")

	return cmd
}

func outputValidationResult(w io.Writer, result ValidationResult, jsonFormat bool) error {
	if jsonFormat {
		return printJSON(w, result)
	}

	if result.Valid {
		fmt.Fprintln(w, "✓ Configuration is valid")
		fmt.Fprintf(w, "  - Config: %s\n", result.Config)
		fmt.Fprintf(w, "  - Base URL: %s\n", result.BaseURL)
		fmt.Fprintf(w, "  - Token: %s\n", result.Token)
		fmt.Fprintf(w, "  - Timeouts: connect %s, read %s\n", result.ConnectTimeout, result.ReadTimeout)
		if len(result.Warnings) > 0 {
			fmt.Fprintln(w, "\n⚠️  Warnings:")
			for _, warning := range result.Warnings {
				fmt.Fprintf(w, "  - %s\n", warning)
			}
		}
		return nil
	}

	fmt.Fprintln(w, "❌ Configuration validation failed:")
	fmt.Fprintf(w, "  - Config: %s\n", result.Config)
	for _, errMsg := range result.Errors {
		fmt.Fprintf(w, "  - %s\n", errMsg)
	}
	return nil
}

// validateConfigDetails reports settings that load fine but make some commands need extra flags
func validateConfigDetails(cfg *config.Config) []string {
	var warnings []string

	if cfg.DefaultTo == "" {
		warnings = append(warnings, "default_to is not set - send commands need --to")
	}
	if cfg.DefaultBotID == "" {
		warnings = append(warnings, "default_bot_id is not set - every command needs --bot")
	}

	return warnings
}
