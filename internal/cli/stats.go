package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/stats"
)

type StatsCmd struct {
	JSON bool `help:"Emit the report as JSON."`
}

func (cmd *StatsCmd) Run(ctx *Context) error {
	report := stats.BuildReport(ctx.Store.Vehicles(), ctx.Store.Bookings(), time.Now())

	if cmd.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Fleet report, generated %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Vehicles: %d    Bookings: %d\n\n", report.TotalVehicles, report.TotalBookings)

	fmt.Println("By vehicle type:")
	for t, n := range report.VehicleTypes {
		fmt.Printf("  %-12s %d\n", t, n)
	}
	fmt.Println()

	fmt.Println("By booking status:")
	for s, n := range report.StatusBreakdown {
		fmt.Printf("  %-12s %d\n", s, n)
	}
	fmt.Println()

	fmt.Println("Utilization (30-day reference):")
	for _, vs := range report.Utilization {
		fmt.Printf("  %-20s %3d%%  %s\n", vs.Vehicle.Name, vs.UtilizationPercent, vs.Band())
	}

	return nil
}
