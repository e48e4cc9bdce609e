package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/webpackassets/internal/assets"
	"github.com/quantmind-br/webpackassets/internal/config"
	"github.com/quantmind-br/webpackassets/internal/domain"
	"github.com/quantmind-br/webpackassets/internal/utils"
	"github.com/quantmind-br/webpackassets/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.GetViper()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by the commands of one invocation
type app struct {
	v        *viper.Viper
	cfgFile  string
	opts     domain.CommonOptions
	cfg      *config.Config
	log      *utils.Logger
	resolver *assets.Resolver
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, opts: domain.DefaultCommonOptions()}

	rootCmd := &cobra.Command{
		Use:   "webpackassets",
		Short: "Resolve webpack chunk assets to URLs",
		Long: `webpackassets reads the JSON manifest written by a webpack build and prints
the JavaScript and CSS files of its chunks, prefixing relative paths with
the site URL so they can be dropped into script and link tags.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ~/.webpackassets/config.yaml)")
	flags.StringP("manifest", "m", config.DefaultJSONPath, "Path to the webpack manifest JSON")
	flags.StringP("site-url", "u", config.DefaultSiteURL, "Base URL prepended to relative asset paths")
	flags.BoolVar(&a.opts.JSON, "json", false, "Print results as JSON")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Verbose output")

	_ = v.BindPFlag(domain.ConfigKeyJSONPath, flags.Lookup("manifest"))
	_ = v.BindPFlag(domain.ConfigKeySiteURL, flags.Lookup("site-url"))

	rootCmd.AddCommand(
		a.assetCmd(domain.AssetJS),
		a.assetCmd(domain.AssetCSS),
		a.chunksCmd(),
		a.publicPathCmd(),
		a.doctorCmd(),
		a.configCmd(),
		a.versionCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the resolver
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	}

	cfg, err := config.LoadFrom(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	a.log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: a.opts.Verbose,
	})
	a.resolver = assets.NewResolver(cfg, assets.WithLogger(a.log))

	a.log.Debug().
		Str("manifest", cfg.JSONPath).
		Str("site_url", cfg.SiteURL).
		Str("config", a.v.ConfigFileUsed()).
		Msg("Configuration loaded")

	return nil
}

func (a *app) assetCmd(kind domain.AssetKind) *cobra.Command {
	label := "JavaScript"
	if kind == domain.AssetCSS {
		label = "CSS"
	}

	return &cobra.Command{
		Use:   string(kind) + " [chunk...]",
		Short: "Print the " + label + " files of the given chunks (all chunks by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// no arguments means every chunk, not an empty filter
			var chunkNames []string
			if len(args) > 0 {
				chunkNames = args
			}

			files, err := listAssets(a.resolver, kind, chunkNames)
			if err != nil {
				return err
			}

			if a.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), domain.AssetList{
					Kind:   kind,
					Chunks: chunkNames,
					Files:  files,
				})
			}
			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}
			return nil
		},
	}
}

// listAssets queries r for the files of the given kind
func listAssets(r domain.AssetResolver, kind domain.AssetKind, chunkNames []string) ([]string, error) {
	if kind == domain.AssetCSS {
		return r.CSSFiles(chunkNames...)
	}
	return r.JSFiles(chunkNames...)
}

func (a *app) chunksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chunks",
		Short: "List the chunks of the manifest in manifest order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.resolver.ChunkTable()
			if err != nil {
				return err
			}

			if a.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), table)
			}
			for _, name := range table.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) publicPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public-path",
		Short: "Report whether the manifest publicPath is an absolute URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absolute, err := a.resolver.IsPublicPathAbsoluteURL()
			if err != nil {
				return err
			}

			if a.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), map[string]bool{"absolute": absolute})
			}
			if absolute {
				fmt.Fprintln(cmd.OutOrStdout(), "absolute")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "relative")
			}
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFilePath()
			if len(args) == 1 {
				path = utils.ExpandPath(args[0])
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Save(a.cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// no configuration needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.JSON {
				return writeJSON(cmd.OutOrStdout(), version.Get())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
