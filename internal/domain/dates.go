package domain

import "time"

// CalendarDaysUntil returns the number of calendar days from now to t,
// comparing dates in now's location. Negative means t is in the past.
// Times of day are ignored: 23:59 today and 00:01 tomorrow are one day apart.
func CalendarDaysUntil(t, now time.Time) int {
	loc := now.Location()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.In(loc).Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
