package models

import (
	"fmt"
	"time"
)

const reportDateLayout = "2006-01-02"

// ReportDate is a calendar date used to filter a series. It carries no location:
// a sample matches when its timestamp falls on this date in the sample's own location.
type ReportDate struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseReportDate(s string) (ReportDate, error) {
	t, err := time.Parse(reportDateLayout, s)
	if err != nil {
		return ReportDate{}, fmt.Errorf("invalid report date %q: expected YYYY-MM-DD", s)
	}
	return ReportDateOf(t), nil
}

func ReportDateOf(t time.Time) ReportDate {
	y, m, d := t.Date()
	return ReportDate{Year: y, Month: m, Day: d}
}

func (d ReportDate) Matches(t time.Time) bool {
	return ReportDateOf(t) == d
}

func (d ReportDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
