package domain

// Validation limits
const (
	MinNameLength = 3
	MaxNameLength = 100
	MaxTextLength = 500 // address, special message
)

// Admin list defaults
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Analytics windows in days
const (
	WeekDays       = 7
	MonthDays      = 30
	PrevMonthDays  = 60
	PeakHoursLimit = 3
)

// Date and slot formats
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	SlotTimeFormat = "3:04 PM"    // 2:00 PM
)

// Locations where a theatre can be booked
const (
	LocationRRNagar    = "RR Nagar"
	LocationComingSoon = "Coming Soon"
)

// AllLocations in display order
var AllLocations = []string{
	LocationRRNagar,
	LocationComingSoon,
}
