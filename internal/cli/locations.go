package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
)

var locationsCmd = &cobra.Command{
	Use:     "locations <keyword>",
	Aliases: []string{"loc"},
	Short:   "Look up airports and cities by keyword",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := loadUsecase(cmd)
		if err != nil {
			return err
		}

		out := uc.Locations(cmd.Context(), args[0])
		switch out.Outcome {
		case usecase.OutcomeFailed:
			fmt.Fprintf(cmd.ErrOrStderr(), "%s lookup failed: %s\n", redCross, out.Reason)
			return nil
		case usecase.OutcomeEmpty:
			fmt.Fprintln(cmd.OutOrStdout(), "No locations found.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"IATA", "Name", "City"})
		for _, loc := range out.Locations {
			t.AppendRow(table.Row{color.New(color.Bold).Sprint(loc.IATACode), loc.Name, loc.CityName})
		}

		applyTableFormat(t)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
