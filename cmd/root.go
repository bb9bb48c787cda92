package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/magpietutor/magpie/tutor"
	"github.com/magpietutor/magpie/tutor/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
	commit     = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "magpie",
	Short: "Magpie - card tutor for Inscryption fan sets",
	Long: `Magpie looks cards up in Inscryption fan sets.

Requests are written as modifiers, set codes and a bracketed term:
  [stoat]            fuzzy search the default set
  com|cti[wolf]      fuzzy search the listed sets
  q[h>=3 c:2b]       query the default set
  q*[sp:ant]         query every loaded set
  dq[tb:canine]      also print the active filters

Examples:
  magpie search "[stoat]"
  magpie query "h>=3 or a:0"
  magpie sets`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setupLogger(cfg.Log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config (defaults to the competitive set only)")
}

// Execute runs the root command.
func Execute(v, c string) error {
	version, commit = v, c
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	return rootCmd.Execute()
}

func loadConfig() (*tutor.Config, error) {
	if configPath == "" {
		return tutor.DefaultConfig(), nil
	}
	return tutor.LoadConfig(configPath)
}

func setupLogger(cfg tutor.LogConfig) {
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "plain":
		handler = logger.NewHandler(os.Stderr, opts).WithoutColor()
	default:
		handler = logger.NewHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// newTutor loads the config and every configured set.
func newTutor(cmd *cobra.Command) (*tutor.Tutor, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	t := tutor.New(*cfg, version, commit)
	if err := t.SetupSpaces(cmd.Context()); err != nil {
		return nil, err
	}
	if err := t.LoadSets(cmd.Context()); err != nil {
		return nil, err
	}
	return t, nil
}
