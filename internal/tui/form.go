package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/mockdata"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

// newBookingForm builds the details form over the given field values.
// The same form serves editing and adding.
func (m *Model) newBookingForm(values *BookingFormModel) *huh.Form {
	vehicleOpts := make([]huh.Option[string], 0, len(m.store.Vehicles()))
	for _, v := range m.store.Vehicles() {
		vehicleOpts = append(vehicleOpts,
			huh.NewOption(fmt.Sprintf("%s (%s)", v.Name, v.TypeName()), v.ID))
	}

	typeOpts := make([]huh.Option[string], 0, len(constants.BookingTypes))
	for _, t := range constants.BookingTypes {
		typeOpts = append(typeOpts, huh.NewOption(constants.BookingTypeName[t], string(t)))
	}

	statusOpts := make([]huh.Option[string], 0, len(constants.BookingStatuses))
	for _, s := range constants.BookingStatuses {
		statusOpts = append(statusOpts, huh.NewOption(constants.BookingStatusName[s], string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&values.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Vehicle").
				Options(vehicleOpts...).
				Value(&values.VehicleID),
			huh.NewInput().
				Title("Start (YYYY-MM-DD HH:MM)").
				Value(&values.Start).
				Validate(validateDateTime),
			huh.NewInput().
				Title("End (YYYY-MM-DD HH:MM)").
				Value(&values.End).
				Validate(validateDateTime),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOpts...).
				Value(&values.Type),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOpts...).
				Value(&values.Status),
			huh.NewInput().
				Title("Customer").
				Description("Only used for customer bookings").
				Value(&values.Customer),
			huh.NewText().
				Title("Notes").
				Value(&values.Notes),
		),
	)
}

func validateDateTime(s string) error {
	if _, err := time.ParseInLocation(constants.DateTimeFormat, s, time.Local); err != nil {
		return fmt.Errorf("expected %s", constants.DateTimeFormat)
	}
	return nil
}

// formValuesFor seeds the form from an existing booking
func formValuesFor(b models.Booking) *BookingFormModel {
	return &BookingFormModel{
		Title:     b.Title,
		VehicleID: b.VehicleID,
		Start:     b.StartDate.Format(constants.DateTimeFormat),
		End:       b.EndDate.Format(constants.DateTimeFormat),
		Type:      string(b.Type),
		Status:    string(b.Status),
		Customer:  b.Customer,
		Notes:     b.Notes,
	}
}

// emptyFormValues seeds the form for a new booking starting today
func (m *Model) emptyFormValues() *BookingFormModel {
	start := time.Date(m.currentDate.Year(), m.currentDate.Month(), m.currentDate.Day(), 9, 0, 0, 0, m.currentDate.Location())
	values := &BookingFormModel{
		Start:  start.Format(constants.DateTimeFormat),
		End:    start.Add(4 * time.Hour).Format(constants.DateTimeFormat),
		Type:   string(constants.BookingCustomer),
		Status: string(constants.StatusPending),
	}
	if vs := m.store.Vehicles(); len(vs) > 0 {
		values.VehicleID = vs[0].ID
	}
	return values
}

// submitBookingForm parses the form values and routes the mutation
// through the planner. Editing keeps the booking ID; adding mints one.
func (m *Model) submitBookingForm() error {
	values := m.bookingForm

	start, err := time.ParseInLocation(constants.DateTimeFormat, values.Start, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := time.ParseInLocation(constants.DateTimeFormat, values.End, time.Local)
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}

	customer := ""
	if values.Type == string(constants.BookingCustomer) {
		customer = values.Customer
	}

	b := models.Booking{
		ID:        m.editingID,
		VehicleID: values.VehicleID,
		Title:     values.Title,
		StartDate: start,
		EndDate:   end,
		Type:      constants.BookingType(values.Type),
		Status:    constants.BookingStatus(values.Status),
		Customer:  customer,
		Notes:     values.Notes,
	}

	if m.editingID == "" {
		b.ID = mockdata.NewBookingID()
		return m.planner.Create(b)
	}
	return m.planner.Update(b)
}
