// Package mockdata generates the demo fleet. A real deployment would
// replace this with an API-backed loader without touching the rest of
// the core; only the two Generate functions are depended upon.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

var locations = []string{"North Depot", "South Depot", "East Garage", "West Garage", "Central Hub"}

// Generator produces reproducible demo data from a seed
type Generator struct {
	rng *rand.Rand
}

// New creates a generator. The same seed always yields the same fleet.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Vehicles generates count vehicles with type-dependent capacity
func (g *Generator) Vehicles(count int) []models.Vehicle {
	vehicles := make([]models.Vehicle, 0, count)
	for i := 1; i <= count; i++ {
		vt := constants.VehicleTypes[g.rng.Intn(len(constants.VehicleTypes))]
		vehicles = append(vehicles, models.Vehicle{
			ID:           fmt.Sprintf("v-%d", i),
			Name:         fmt.Sprintf("Vehicle %d", i),
			Type:         vt,
			Capacity:     constants.VehicleTypeCapacity[vt],
			LicensePlate: fmt.Sprintf("ABC-%d", 1000+i),
			Location:     locations[g.rng.Intn(len(locations))],
		})
	}
	return vehicles
}

// Bookings generates count bookings spread over [rangeStart, rangeEnd).
// Starts land between 08:00 and 19:00, durations run 4 to 71 hours,
// and only customer bookings carry a customer name. The generated set
// is not conflict-free; the no-overlap rule is enforced at mutation
// time, not at generation time.
func (g *Generator) Bookings(vehicles []models.Vehicle, rangeStart, rangeEnd time.Time, count int) []models.Booking {
	days := int(rangeEnd.Sub(rangeStart).Hours() / 24)
	if days < 1 {
		days = 1
	}

	bookings := make([]models.Booking, 0, count)
	for i := 1; i <= count; i++ {
		vehicle := vehicles[g.rng.Intn(len(vehicles))]
		bt := constants.BookingTypes[g.rng.Intn(len(constants.BookingTypes))]
		bs := constants.BookingStatuses[g.rng.Intn(len(constants.BookingStatuses))]

		start := rangeStart.
			AddDate(0, 0, g.rng.Intn(days)).
			Add(time.Duration(g.rng.Intn(12)+8) * time.Hour)
		end := start.Add(time.Duration(g.rng.Intn(68)+4) * time.Hour)

		customer := ""
		if bt == constants.BookingCustomer {
			customer = fmt.Sprintf("Customer %d", g.rng.Intn(100))
		}

		bookings = append(bookings, models.Booking{
			ID:        fmt.Sprintf("b-%d", i),
			VehicleID: vehicle.ID,
			Title:     fmt.Sprintf("Booking %d", i),
			StartDate: start,
			EndDate:   end,
			Type:      bt,
			Status:    bs,
			Customer:  customer,
			Notes:     fmt.Sprintf("Notes for booking %d", i),
		})
	}
	return bookings
}

// NewBookingID mints an ID for a booking created through the form
func NewBookingID() string {
	return "b-" + uuid.NewString()[:8]
}
