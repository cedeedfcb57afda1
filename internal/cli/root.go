package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/config"
	"github.com/katalvlaran/subway/loader"
	"github.com/katalvlaran/subway/planner"
)

// ErrNoNetwork is returned when neither --config nor --network names a data file.
var ErrNoNetwork = errors.New("cli: no network file; pass --config or --network")

type SubwayApp struct {
	ConfigPath  string
	NetworkPath string
}

func Execute() error {
	InitLogging()
	app := &SubwayApp{}
	rootCmd := NewRootCmd(app)
	return rootCmd.Execute()
}

func NewRootCmd(app *SubwayApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "subway",
		Short:         "Find routes through a subway network",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(
		&app.ConfigPath,
		"config",
		"",
		"Path to a YAML or TOML configuration file",
	)
	cmd.PersistentFlags().StringVar(
		&app.NetworkPath,
		"network",
		"",
		"Path to network data (.html or .csv); overrides the config file",
	)

	cmd.AddCommand(NewRouteCmd(app))
	cmd.AddCommand(NewStationsCmd(app))
	cmd.AddCommand(NewServeCmd(app))

	return cmd
}

// Config resolves the effective configuration from the flags.
func (app *SubwayApp) Config() (config.AppConfig, error) {
	var cfg config.AppConfig
	if app.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(app.ConfigPath); err != nil {
			return config.AppConfig{}, err
		}
	} else {
		cfg = config.Default("")
	}

	if app.NetworkPath != "" {
		cfg.Network.Path = app.NetworkPath
	}
	if cfg.Network.Path == "" {
		return config.AppConfig{}, ErrNoNetwork
	}

	return cfg, nil
}

// Planner loads the network named by cfg and builds a Planner over it.
func (app *SubwayApp) Planner(cfg config.AppConfig, opts ...planner.Option) (*planner.Planner, error) {
	lines, err := loader.Load(cfg.Network.Path)
	if err != nil {
		return nil, err
	}

	return planner.New(lines, append(PlannerOptions(cfg), opts...)...)
}

// PlannerOptions maps the search section onto planner options.
func PlannerOptions(cfg config.AppConfig) []planner.Option {
	opts := []planner.Option{
		planner.WithMaxExpansions(cfg.Search.MaxExpansions),
		planner.WithTimeout(cfg.Search.Timeout),
	}
	if cfg.Search.ReachabilityCheck != nil {
		opts = append(opts, planner.WithReachabilityCheck(*cfg.Search.ReachabilityCheck))
	}

	return opts
}
