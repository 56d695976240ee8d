package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fleetdeck/fleetdeck/internal/cli"
	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/logger"
	"github.com/fleetdeck/fleetdeck/internal/mockdata"
	"github.com/fleetdeck/fleetdeck/internal/schedule"
	"github.com/fleetdeck/fleetdeck/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging to stderr."`
	LogDir  string `help:"Log directory." type:"path"`

	Seed     int64 `help:"Demo data seed." default:"42"`
	Vehicles int   `help:"Number of demo vehicles." default:"15"`
	Bookings int   `help:"Number of demo bookings." default:"40"`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the scheduling dashboard." default:"1"`
	Stats    cli.StatsCmd    `cmd:"" help:"Print the fleet utilization report."`
	Validate cli.ValidateCmd `cmd:"" help:"Scan the booking set for overlaps."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Fleet scheduling dashboard"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, LogDir: CLI.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	gen := mockdata.New(CLI.Seed)
	vehicles := gen.Vehicles(CLI.Vehicles)
	bookings := gen.Bookings(vehicles, now, now.AddDate(0, 0, constants.DefaultFilterRangeDays), CLI.Bookings)

	s := store.New(vehicles, bookings)
	appCtx := &cli.Context{
		Store:   s,
		Planner: schedule.NewPlanner(s),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
