package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridable at build time:
//
//	go build -ldflags "-X main.Version=0.2.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tren build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch versionFormat {
		case "pretty":
			fmt.Fprintf(cmd.OutOrStdout(), "tren %s (%s)\n", Version, runtime.Version())
			if GitCommit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", GitCommit)
			}
			if BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", BuildDate)
			}
			return nil
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Tool      string `json:"tool"`
				Version   string `json:"version"`
				GoVersion string `json:"go_version"`
				GitCommit string `json:"git_commit,omitempty"`
				BuildDate string `json:"build_date,omitempty"`
			}{"tren", Version, runtime.Version(), GitCommit, BuildDate})
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}
