package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"trfts/internal/analyzer"
	"trfts/internal/common"
	"trfts/internal/config"
	"trfts/internal/morph"
)

// app carries what the subcommands share once flags are parsed.
type app struct {
	conf        config.Config
	buildEngine func(config.Config) (morph.Engine, func(), error)
}

func newRootCmd() *cobra.Command {
	return (&app{buildEngine: config.Config.BuildEngine}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trfts",
		Short: "trfts: Turkish text analysis for full-text search",
		Long: `
trfts turns Turkish text into index terms: it splits text on word
boundaries, cleans up acronyms and apostrophe suffixes, lowercases, drops
stop words and reduces every word to its root.

Configuration is read from --config (YAML, TOML or JSON), then TRFTS_*
environment variables, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if err := setupLogger(debug); err != nil {
				return err
			}
			cfgFile, _ := cmd.Flags().GetString("config")
			c, err := config.Load(viper.New(), cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.conf = c
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			common.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	pf.Bool("debug", false, "Log debug output to stderr.")
	config.BindFlags(pf)

	root.AddCommand(newAnalyzeCmd(a), newDemoCmd(a))
	return root
}

func setupLogger(debug bool) error {
	common.SetDebug(debug)
	if !debug {
		common.SetLogger(zap.NewNop())
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	common.SetLogger(l)
	return nil
}

// buildAnalyzer builds the analyzer from the loaded configuration. extra engines
// are consulted before the configured one. The caller must defer the returned
// release func; cobra skips PersistentPostRun when RunE fails.
func (a *app) buildAnalyzer(extra ...morph.Engine) (*analyzer.TurkishAnalyzer, func(), error) {
	e, release, err := a.buildEngine(a.conf)
	if err != nil {
		release()
		return nil, func() {}, err
	}
	if len(extra) > 0 {
		e = append(morph.Chain(extra), e)
	}
	common.INFO("engine %s/%s, cache %s", a.conf.Engine.Kind, a.conf.Engine.Language, a.conf.Cache.Kind)
	an, err := analyzer.New(a.conf, e)
	if err != nil {
		release()
		return nil, func() {}, err
	}
	return an, release, nil
}
