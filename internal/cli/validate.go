package cli

import (
	"fmt"

	"github.com/fleetdeck/fleetdeck/internal/models"
	"github.com/fleetdeck/fleetdeck/internal/schedule"
)

type ValidateCmd struct{}

// Run scans the booking set for same-vehicle overlaps and prints a
// report. Generated data is intentionally not conflict-free, so this
// doubles as a quick way to see what the conflict engine would reject.
func (cmd *ValidateCmd) Run(ctx *Context) error {
	bookings := ctx.Store.Bookings()

	var conflicts [][2]models.Booking
	for i := range bookings {
		b := bookings[i]
		if schedule.HasConflict(bookings[i+1:], b.VehicleID, b.StartDate, b.EndDate, b.ID) {
			for j := i + 1; j < len(bookings); j++ {
				o := bookings[j]
				if o.VehicleID != b.VehicleID {
					continue
				}
				if b.StartDate.Before(o.EndDate) && o.StartDate.Before(b.EndDate) {
					conflicts = append(conflicts, [2]models.Booking{b, o})
				}
			}
		}
	}

	fmt.Printf("Checked %d bookings\n", len(bookings))
	if len(conflicts) == 0 {
		fmt.Println("No overlapping bookings found.")
		return nil
	}

	fmt.Printf("Found %d overlapping pairs:\n\n", len(conflicts))
	for _, pair := range conflicts {
		a, b := pair[0], pair[1]
		v, _ := ctx.Store.Vehicle(a.VehicleID)
		fmt.Printf("  %s:\n    %-24s %s\n    %-24s %s\n",
			v.Name,
			a.Title, a.FormatInterval(),
			b.Title, b.FormatInterval())
	}

	return nil
}
