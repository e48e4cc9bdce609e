package main

import (
	"errors"
	"fmt"

	"github.com/quantmind-br/webpackassets/internal/manifest"
	"github.com/quantmind-br/webpackassets/internal/utils"
	"github.com/spf13/cobra"
)

// errChecksFailed is returned by doctor when a critical check fails
var errChecksFailed = errors.New("some checks failed")

func (a *app) doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration and the webpack manifest",
		Long:  "Verifies that the configured manifest exists, parses, and contains a chunk table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking webpack manifest...")
			allPassed := true

			// Check 1: Config file
			fmt.Fprint(out, "  Config file: ")
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "OK (%s)\n", used)
			} else {
				fmt.Fprintln(out, "WARN (none found, using defaults)")
			}

			// Check 2: Manifest file
			path := a.cfg.JSONPath
			fmt.Fprint(out, "  Manifest file: ")
			if utils.FileExists(path) {
				fmt.Fprintf(out, "OK (%s)\n", path)
			} else {
				fmt.Fprintf(out, "FAILED (%s not found)\n", path)
				allPassed = false
			}

			// Check 3: Manifest content
			fmt.Fprint(out, "  Manifest JSON: ")
			doc, err := manifest.Load(path)
			if err != nil {
				fmt.Fprintf(out, "FAILED (%v)\n", err)
				allPassed = false
			} else {
				fmt.Fprintln(out, "OK")
			}

			// Check 4: Chunk table
			fmt.Fprint(out, "  Chunk table: ")
			if doc == nil {
				fmt.Fprintln(out, "SKIPPED")
			} else if table, err := manifest.BuildChunkTable(doc); err != nil {
				fmt.Fprintf(out, "FAILED (%v)\n", err)
				allPassed = false
			} else {
				fmt.Fprintf(out, "OK (%d chunks)\n", table.Len())
			}

			// Check 5: Public path
			fmt.Fprint(out, "  Public path: ")
			if doc == nil {
				fmt.Fprintln(out, "SKIPPED")
			} else if publicPath, ok := doc.PublicPath(); ok {
				fmt.Fprintf(out, "OK (%s)\n", publicPath)
			} else {
				fmt.Fprintln(out, "WARN (not set)")
			}

			// Check 6: Site URL
			fmt.Fprint(out, "  Site URL: ")
			if a.cfg.SiteURL != "" {
				fmt.Fprintf(out, "OK (%s)\n", a.cfg.SiteURL)
			} else {
				fmt.Fprintln(out, "WARN (empty, relative paths are printed as-is)")
			}

			fmt.Fprintln(out)
			if !allPassed {
				fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
				return errChecksFailed
			}
			fmt.Fprintln(out, "All critical checks passed!")
			return nil
		},
	}
}
