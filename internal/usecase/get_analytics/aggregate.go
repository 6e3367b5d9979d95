package get_analytics

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

const day = 24 * time.Hour

// Aggregate derives the dashboard figures from every booking and activity.
// Ratios over an empty collection are reported as 0.
func Aggregate(bookings []*domain.Booking, activities []*domain.BookingActivity, now time.Time) domain.Analytics {
	var a domain.Analytics

	weekStart := now.Add(-domain.WeekDays * day)
	prevWeekStart := now.Add(-2 * domain.WeekDays * day)
	monthStart := now.Add(-domain.MonthDays * day)
	prevMonthStart := now.Add(-domain.PrevMonthDays * day)

	// 1. Выручка и статусы
	for _, b := range bookings {
		a.TotalRevenue += b.TotalPrice

		switch b.Status {
		case domain.StatusPending:
			a.StatusCounts.Pending++
		case domain.StatusConfirmed:
			a.StatusCounts.Confirmed++
		case domain.StatusCancelled:
			a.StatusCounts.Cancelled++
		}

		created := b.CreatedAt
		if created.After(weekStart) {
			a.WeeklyRevenue += b.TotalPrice
			a.NewBookings++
		} else if created.After(prevWeekStart) {
			a.LastWeekRevenue += b.TotalPrice
		}

		if created.After(monthStart) {
			a.MonthlyRevenue += b.TotalPrice
		} else if created.After(prevMonthStart) {
			a.LastMonthRevenue += b.TotalPrice
		}
	}

	a.TotalBookings = len(bookings)
	a.TotalVisitors = len(activities)
	a.AverageBookingValue = ratio(float64(a.TotalRevenue), len(bookings))
	a.MonthlyGrowth = growth(a.MonthlyRevenue, a.LastMonthRevenue)
	a.WeeklyGrowth = growth(a.WeeklyRevenue, a.LastWeekRevenue)

	// 2. Конверсия: пустая воронка считается как знаменатель 1
	visitors := len(activities)
	if visitors == 0 {
		visitors = 1
	}
	a.ConversionRate = float64(len(bookings)) / float64(visitors) * 100

	// 3. Воронка по шагам
	var step1, step2 int
	for _, act := range activities {
		switch act.StepCompleted {
		case domain.FunnelStepPersonalDetails:
			step1++
		case domain.FunnelStepBookingDetails:
			step2++
		}
	}
	a.CompletionRate = ratio(float64(step2), len(activities)) * 100
	a.DropoffRate = ratio(float64(step1), len(activities)) * 100

	a.PeakHours = peakHours(activities, now.Location(), domain.PeakHoursLimit)
	return a
}

// peakHours ranks hours of day by activity count, ties go to the earlier hour
func peakHours(activities []*domain.BookingActivity, loc *time.Location, limit int) []domain.PeakHour {
	if len(activities) == 0 {
		return []domain.PeakHour{}
	}

	var counts [24]int
	for _, act := range activities {
		counts[act.LastActive.In(loc).Hour()]++
	}

	hours := make([]domain.PeakHour, 0, 24)
	for hour, count := range counts {
		if count == 0 {
			continue
		}
		hours = append(hours, domain.PeakHour{
			Hour:       hour,
			Count:      count,
			Percentage: float64(count) / float64(len(activities)) * 100,
		})
	}

	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].Count > hours[j].Count
	})

	if len(hours) > limit {
		hours = hours[:limit]
	}
	return hours
}

func ratio(num float64, den int) float64 {
	if den == 0 {
		return 0
	}
	return num / float64(den)
}

// growth процент изменения относительно предыдущего периода
func growth(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
