package repository

import (
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
)

// Analytics aggregates counters for the admin dashboard.
type Analytics struct {
	OrdersToday int64
	OrdersMonth int64
	OrdersYear  int64

	RevenueToday float64
	RevenueMonth float64
	RevenueYear  float64

	ReservationsToday int64
	ReservationsMonth int64
	ReservationsYear  int64

	CancelledToday int64
	CancelledMonth int64
	CancelledYear  int64

	TotalTables int64

	// MonthlyRevenue holds one entry per month of the current year, January
	// first, up to and including the current month.
	MonthlyRevenue []float64
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}

func (r *Repository) countOrdersSince(restaurantID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restaurantID, since).
		Count(&count).Error
	return count, err
}

func (r *Repository) sumOrderRevenue(restaurantID string, from, to time.Time) (float64, error) {
	var total *float64
	err := r.db.Model(&ds.Order{}).
		Select("SUM(total_amount)").
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restaurantID, from, to).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *Repository) countReservationsBetween(restaurantID string, from, to time.Time, status string) (int64, error) {
	query := r.db.Model(&ds.Reservation{}).
		Where("restaurant_id = ? AND date_time >= ? AND date_time < ?", restaurantID, from, to)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// GetAnalytics computes the dashboard aggregates for today, this month and
// this year, plus the per-month revenue series of the current year.
func (r *Repository) GetAnalytics(restaurantID string) (*Analytics, error) {
	restaurant, err := r.ResolveRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := startOfDay(now)
	monthStart := startOfMonth(now)
	yearStart := startOfYear(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yearEnd := yearStart.AddDate(1, 0, 0)

	a := &Analytics{}

	if a.OrdersToday, err = r.countOrdersSince(restaurant.ID, dayStart); err != nil {
		return nil, err
	}
	if a.OrdersMonth, err = r.countOrdersSince(restaurant.ID, monthStart); err != nil {
		return nil, err
	}
	if a.OrdersYear, err = r.countOrdersSince(restaurant.ID, yearStart); err != nil {
		return nil, err
	}

	if a.RevenueToday, err = r.sumOrderRevenue(restaurant.ID, dayStart, dayEnd); err != nil {
		return nil, err
	}
	if a.RevenueMonth, err = r.sumOrderRevenue(restaurant.ID, monthStart, monthEnd); err != nil {
		return nil, err
	}
	if a.RevenueYear, err = r.sumOrderRevenue(restaurant.ID, yearStart, yearEnd); err != nil {
		return nil, err
	}

	if a.ReservationsToday, err = r.countReservationsBetween(restaurant.ID, dayStart, dayEnd, ""); err != nil {
		return nil, err
	}
	if a.ReservationsMonth, err = r.countReservationsBetween(restaurant.ID, monthStart, monthEnd, ""); err != nil {
		return nil, err
	}
	if a.ReservationsYear, err = r.countReservationsBetween(restaurant.ID, yearStart, yearEnd, ""); err != nil {
		return nil, err
	}

	if a.CancelledToday, err = r.countReservationsBetween(restaurant.ID, dayStart, dayEnd, ds.ReservationCancelled); err != nil {
		return nil, err
	}
	if a.CancelledMonth, err = r.countReservationsBetween(restaurant.ID, monthStart, monthEnd, ds.ReservationCancelled); err != nil {
		return nil, err
	}
	if a.CancelledYear, err = r.countReservationsBetween(restaurant.ID, yearStart, yearEnd, ds.ReservationCancelled); err != nil {
		return nil, err
	}

	if err = r.db.Model(&ds.Table{}).Count(&a.TotalTables).Error; err != nil {
		return nil, err
	}

	for m := 0; m <= int(now.Month())-1; m++ {
		from := yearStart.AddDate(0, m, 0)
		to := yearStart.AddDate(0, m+1, 0)
		revenue, err := r.sumOrderRevenue(restaurant.ID, from, to)
		if err != nil {
			return nil, err
		}
		a.MonthlyRevenue = append(a.MonthlyRevenue, revenue)
	}

	return a, nil
}
