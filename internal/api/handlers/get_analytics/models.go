package get_analytics

import "github.com/m04kA/SMC-TheatreBooking/internal/domain"

// AnalyticsResponse сводка для дашборда
type AnalyticsResponse struct {
	TotalBookings       int                `json:"total_bookings"`
	TotalRevenue        int64              `json:"total_revenue"`
	StatusCounts        StatusCounts       `json:"status_counts"`
	TotalVisitors       int                `json:"total_visitors"`
	NewBookings         int                `json:"new_bookings"`
	ConversionRate      float64            `json:"conversion_rate"`
	WeeklyRevenue       int64              `json:"weekly_revenue"`
	LastWeekRevenue     int64              `json:"last_week_revenue"`
	MonthlyRevenue      int64              `json:"monthly_revenue"`
	LastMonthRevenue    int64              `json:"last_month_revenue"`
	WeeklyGrowth        float64            `json:"weekly_growth"`
	MonthlyGrowth       float64            `json:"monthly_growth"`
	AverageBookingValue float64            `json:"average_booking_value"`
	CompletionRate      float64            `json:"completion_rate"`
	DropoffRate         float64            `json:"dropoff_rate"`
	PeakHours           []PeakHourResponse `json:"peak_hours"`
}

type StatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

type PeakHourResponse struct {
	Hour       int     `json:"hour"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(a *domain.Analytics) *AnalyticsResponse {
	peaks := make([]PeakHourResponse, 0, len(a.PeakHours))
	for _, p := range a.PeakHours {
		peaks = append(peaks, PeakHourResponse{Hour: p.Hour, Count: p.Count, Percentage: p.Percentage})
	}

	return &AnalyticsResponse{
		TotalBookings: a.TotalBookings,
		TotalRevenue:  a.TotalRevenue,
		StatusCounts: StatusCounts{
			Pending:   a.StatusCounts.Pending,
			Confirmed: a.StatusCounts.Confirmed,
			Cancelled: a.StatusCounts.Cancelled,
		},
		TotalVisitors:       a.TotalVisitors,
		NewBookings:         a.NewBookings,
		ConversionRate:      a.ConversionRate,
		WeeklyRevenue:       a.WeeklyRevenue,
		LastWeekRevenue:     a.LastWeekRevenue,
		MonthlyRevenue:      a.MonthlyRevenue,
		LastMonthRevenue:    a.LastMonthRevenue,
		WeeklyGrowth:        a.WeeklyGrowth,
		MonthlyGrowth:       a.MonthlyGrowth,
		AverageBookingValue: a.AverageBookingValue,
		CompletionRate:      a.CompletionRate,
		DropoffRate:         a.DropoffRate,
		PeakHours:           peaks,
	}
}
