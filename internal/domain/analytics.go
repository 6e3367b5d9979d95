package domain

// StatusCounts number of bookings per status
type StatusCounts struct {
	Pending   int
	Confirmed int
	Cancelled int
}

// PeakHour is an hour of day (0-23) with the share of funnel activity it holds
type PeakHour struct {
	Hour       int
	Count      int
	Percentage float64
}

// Analytics is the dashboard summary over bookings and funnel activity
type Analytics struct {
	TotalBookings       int
	TotalRevenue        int64
	StatusCounts        StatusCounts
	TotalVisitors       int
	NewBookings         int // created in the last 7 days
	ConversionRate      float64
	WeeklyRevenue       int64
	LastWeekRevenue     int64
	MonthlyRevenue      int64
	LastMonthRevenue    int64
	MonthlyGrowth       float64
	WeeklyGrowth        float64
	AverageBookingValue float64
	CompletionRate      float64
	DropoffRate         float64
	PeakHours           []PeakHour
}
