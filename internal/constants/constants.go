package constants

// VehicleType represents the class of a fleet vehicle
type VehicleType string

// BookingType represents the purpose of a booking
type BookingType string

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

// ViewMode represents the visible calendar window size
type ViewMode string

// SortOrder represents the vehicle ordering of the derived view
type SortOrder string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName = "fleetdeck"
	Version = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the standard date-time format for forms and labels
	DateTimeFormat = "2006-01-02 15:04"

	// HeaderDayFormat labels one day column in day/week views ("Mon 2")
	HeaderDayFormat = "Mon 2"

	// HeaderMonthDayFormat labels one day column in month view ("2")
	HeaderMonthDayFormat = "2"

	// Vehicle Type constants
	VehicleSedan  VehicleType = "sedan"
	VehicleSUV    VehicleType = "suv"
	VehicleVan    VehicleType = "van"
	VehicleTruck  VehicleType = "truck"
	VehicleLuxury VehicleType = "luxury"

	// Booking Type constants
	BookingMaintenance BookingType = "maintenance"
	BookingCustomer    BookingType = "customer"
	BookingService     BookingType = "service"

	// Booking Status constants
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"

	// View Mode constants
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"

	// Sort Order constants
	SortUtilizationDesc SortOrder = "utilization-desc"
	SortUtilizationAsc  SortOrder = "utilization-asc"
	SortNameAsc         SortOrder = "name-asc"
	SortNameDesc        SortOrder = "name-desc"

	// FilterAll is the wildcard value accepted by every filter field
	FilterAll = "all"

	// UtilizationReferenceHours is the fixed reference period for
	// utilization percentages (30 days * 24 hours)
	UtilizationReferenceHours = 30 * 24

	// MinResizeGapHours is the clamp distance between booking edges
	// when a resize would invert the interval
	MinResizeGapHours = 1

	// DefaultVehicleCount and DefaultBookingCount size the generated fleet
	DefaultVehicleCount = 15
	DefaultBookingCount = 40

	// DefaultFilterRangeDays is the span of the initial filter date range
	DefaultFilterRangeDays = 28

	// Session States
	StateChart SessionState = iota
	StateStats
	StateHeatmap
	StateFilters
	StateEditBooking
	StateAddBooking
)

// VehicleTypes lists every vehicle type in display order
var VehicleTypes = []VehicleType{VehicleSedan, VehicleSUV, VehicleVan, VehicleTruck, VehicleLuxury}

// BookingTypes lists every booking type in display order
var BookingTypes = []BookingType{BookingMaintenance, BookingCustomer, BookingService}

// BookingStatuses lists every booking status in display order
var BookingStatuses = []BookingStatus{StatusConfirmed, StatusPending, StatusCompleted}

// SortOrders lists every sort order in cycling order
var SortOrders = []SortOrder{SortUtilizationDesc, SortUtilizationAsc, SortNameAsc, SortNameDesc}

// VehicleTypeCapacity is the seat/load capacity per vehicle type
var VehicleTypeCapacity = map[VehicleType]int{
	VehicleSedan:  4,
	VehicleSUV:    5,
	VehicleVan:    7,
	VehicleTruck:  2,
	VehicleLuxury: 4,
}

// VehicleTypeName is the display name per vehicle type
var VehicleTypeName = map[VehicleType]string{
	VehicleSedan:  "Sedan",
	VehicleSUV:    "SUV",
	VehicleVan:    "Van",
	VehicleTruck:  "Truck",
	VehicleLuxury: "Luxury",
}

// BookingTypeName is the display name per booking type
var BookingTypeName = map[BookingType]string{
	BookingMaintenance: "Maintenance",
	BookingCustomer:    "Customer Booking",
	BookingService:     "Service",
}

// BookingTypeColor maps each booking type to its bar color (ANSI 256 / hex)
var BookingTypeColor = map[BookingType]string{
	BookingMaintenance: "#ff9800",
	BookingCustomer:    "#2196f3",
	BookingService:     "#4caf50",
}

// BookingStatusName is the display name per booking status
var BookingStatusName = map[BookingStatus]string{
	StatusConfirmed: "Confirmed",
	StatusPending:   "Pending",
	StatusCompleted: "Completed",
}

// BookingStatusIndicator maps each status to the fill rune of its bar
// so status reads at a glance even without color
var BookingStatusIndicator = map[BookingStatus]string{
	StatusConfirmed: "█",
	StatusPending:   "▒",
	StatusCompleted: "░",
}

func init() {
	// The style tables are keyed by closed enums; a missing entry is a
	// programming error, so fail loudly at startup instead of rendering
	// unstyled bars.
	for _, bt := range BookingTypes {
		if _, ok := BookingTypeColor[bt]; !ok {
			panic("missing color for booking type " + string(bt))
		}
		if _, ok := BookingTypeName[bt]; !ok {
			panic("missing name for booking type " + string(bt))
		}
	}
	for _, bs := range BookingStatuses {
		if _, ok := BookingStatusIndicator[bs]; !ok {
			panic("missing indicator for booking status " + string(bs))
		}
	}
	for _, vt := range VehicleTypes {
		if _, ok := VehicleTypeCapacity[vt]; !ok {
			panic("missing capacity for vehicle type " + string(vt))
		}
	}
}
