package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewStationsCmd(app *SubwayApp) *cobra.Command {
	var transfers, components bool

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List the stations of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			p, err := app.Planner(cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if components {
				for i, group := range p.Components() {
					fmt.Fprintf(w, "%d\t%d\t%s\n", i+1, len(group), strings.Join(group, ", "))
				}
				return w.Flush()
			}
			if transfers {
				for _, name := range p.Transfers() {
					fmt.Fprintln(w, name)
				}
				return w.Flush()
			}

			for _, s := range p.Stations() {
				fmt.Fprintf(w, "%s\t%s\t%.6f\t%.6f\n", s.Name, s.Line, s.Lat, s.Lng)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&transfers, "transfers", false, "Only list stations served by two or more lines")
	cmd.Flags().BoolVar(&components, "components", false, "List groups of mutually reachable stations")

	return cmd
}
