package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
)

var flightsFlags struct {
	origin      string
	destination string
	date        string
	passengers  int
	maxPrice    float64
	stops       int
	airlines    []string
	sort        string
	order       string
}

var flightsCmd = &cobra.Command{
	Use:   "flights",
	Short: "Search one-way flight offers",
	Example: `  flightsearch flights --origin JFK --destination LHR --date 2025-06-01
  flightsearch flights -o JFK -d LHR --date 2025-06-01 --stops 0 --sort duration`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in, err := flightsInput(cmd)
		if err != nil {
			return err
		}

		uc, err := loadUsecase(cmd)
		if err != nil {
			return err
		}

		out, err := uc.Flights(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("searching flights: %w", err)
		}

		if len(out.Flights) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No flights found.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Flight", "Airline", "Departs", "Arrives", "Duration", "Stops", "Cabin", "Price", "Status"})
		for _, f := range out.Flights {
			t.AppendRow(table.Row{
				color.New(color.Bold).Sprint(f.FlightNumber),
				f.Airline,
				f.DepartureTime.Format("Jan 2 15:04"),
				f.ArrivalTime.Format("Jan 2 15:04"),
				f.Duration,
				stopsLabel(f.Stops),
				f.CabinClass,
				fmt.Sprintf("%.2f %s", f.Price.Amount, f.Price.Currency),
				statusLabel(f.Status),
			})
		}
		t.AppendFooter(table.Row{"", "", "", "", "", "", "",
			fmt.Sprintf("%d of %d", out.Metadata.FilteredResults, out.Metadata.TotalResults), ""})

		applyTableFormat(t)
		t.Render()
		fmt.Fprintf(cmd.OutOrStdout(), "search id: %s\n", out.SearchID)
		return nil
	},
}

func init() {
	f := flightsCmd.Flags()
	f.StringVarP(&flightsFlags.origin, "origin", "o", "", "Origin IATA code")
	f.StringVarP(&flightsFlags.destination, "destination", "d", "", "Destination IATA code")
	f.StringVar(&flightsFlags.date, "date", "", "Departure date (YYYY-MM-DD)")
	f.IntVarP(&flightsFlags.passengers, "passengers", "p", 1, "Number of adult passengers")
	f.Float64Var(&flightsFlags.maxPrice, "max-price", 0, "Only show flights at or below this price")
	f.IntVar(&flightsFlags.stops, "stops", -1, "Only show flights with this many stops")
	f.StringSliceVar(&flightsFlags.airlines, "airlines", nil, "Only show these airlines (name or code)")
	f.StringVar(&flightsFlags.sort, "sort", "price", "Sort by price, duration, departure, arrival or stops")
	f.StringVar(&flightsFlags.order, "order", "asc", "Sort order (asc, desc)")

	_ = flightsCmd.MarkFlagRequired("origin")
	_ = flightsCmd.MarkFlagRequired("destination")
	_ = flightsCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(flightsCmd)
}

func flightsInput(cmd *cobra.Command) (usecase.FlightsInput, error) {
	date, err := time.Parse("2006-01-02", flightsFlags.date)
	if err != nil {
		return usecase.FlightsInput{}, fmt.Errorf("invalid --date %q, want YYYY-MM-DD", flightsFlags.date)
	}
	if flightsFlags.passengers <= 0 {
		return usecase.FlightsInput{}, errors.New("--passengers must be at least 1")
	}

	in := usecase.FlightsInput{
		Origin:        flightsFlags.origin,
		Destination:   flightsFlags.destination,
		DepartureDate: date,
		Passengers:    flightsFlags.passengers,
		Filters:       usecase.FlightFilters{Airlines: flightsFlags.airlines},
		Sort:          usecase.SortOption{Field: flightsFlags.sort, Order: flightsFlags.order},
	}
	if cmd.Flags().Changed("max-price") {
		maxPrice := flightsFlags.maxPrice
		in.Filters.MaxPrice = &maxPrice
	}
	if cmd.Flags().Changed("stops") {
		stops := flightsFlags.stops
		in.Filters.Stops = &stops
	}
	return in, nil
}

func stopsLabel(stops int) string {
	switch stops {
	case 0:
		return "direct"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

func statusLabel(status string) string {
	switch strings.ToLower(status) {
	case "on time":
		return color.GreenString(status)
	case "delayed":
		return color.YellowString(status)
	case "scheduled":
		return color.BlueString(status)
	case "":
		return color.New(color.Faint).Sprint("n/a")
	default:
		return status
	}
}
