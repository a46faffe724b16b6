package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information variables (set via -ldflags during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// VersionOutput represents the version output structure
type VersionOutput struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

func newVersionCmd() *cobra.Command {
	var jsonFormat bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := VersionOutput{
				Version:   Version,
				BuildTime: BuildTime,
				GitCommit: GitCommit,
			}

			w := cmd.OutOrStdout()
			if jsonFormat {
				return printJSON(w, version)
			}

			fmt.Fprintln(w, "onechat version information:")
			fmt.Fprintf(w, "  Version:   %s\n", version.Version)
			fmt.Fprintf(w, "  BuildTime: %s\n", version.BuildTime)
			fmt.Fprintf(w, "  GitCommit: %s\n", version.GitCommit)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFormat, "json", false, "Output in JSON format")

	return cmd
}
