package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/planner"
)

func NewRouteCmd(app *SubwayApp) *cobra.Command {
	var (
		strategy string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find a route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("strategy") {
				strategy = cfg.Search.Strategy
			}

			p, err := app.Planner(cfg)
			if err != nil {
				return err
			}

			route, err := p.Plan(cmd.Context(), strategy, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(route)
			}

			fmt.Fprintln(out, strings.Join(route.Stations, " -> "))
			fmt.Fprintf(out, "%d stops, %.2f km (%s)\n", route.Stops(), route.DistanceKm, route.Strategy)
			return nil
		},
	}

	cmd.Flags().StringVar(
		&strategy,
		"strategy",
		planner.StrategyDistance,
		"Route strategy: "+strings.Join(planner.Strategies(), ", "),
	)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the route as JSON")

	return cmd
}
