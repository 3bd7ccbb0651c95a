package aggregators

import (
	"fmt"

	"device-telemetry/internal/models"
)

// The functions in this file are pure reductions over immutable series. They never
// mutate their inputs and are safe to call concurrently on a shared session snapshot.

// TotalFor sums one field across every sample of a series.
func TotalFor(series *models.DeviceTelemetrySeries, field models.TelemetryField) (int64, error) {
	if err := validateField(field); err != nil {
		return 0, err
	}
	return sum(series, field), nil
}

// CombinedTotal sums one field across every sample of every series, e.g. the
// "Total Packets Transmitted" overview metric.
func CombinedTotal(seriesList []*models.DeviceTelemetrySeries, field models.TelemetryField) (int64, error) {
	if err := validateField(field); err != nil {
		return 0, err
	}
	var total int64
	for _, series := range seriesList {
		total += sum(series, field)
	}
	return total, nil
}

// FilterByDate returns the samples whose timestamp falls on date, in their original order.
// No match is not an error: the result is an empty, non-nil slice.
func FilterByDate(series *models.DeviceTelemetrySeries, date models.ReportDate) []models.TelemetrySample {
	filtered := make([]models.TelemetrySample, 0)
	for _, s := range series.Samples {
		if date.Matches(s.Timestamp) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// CompareDevices builds one row per series, in input order, with one total per requested
// field in the order the caller gave them.
func CompareDevices(seriesList []*models.DeviceTelemetrySeries, fields []models.TelemetryField) ([]models.DeviceComparison, error) {
	for _, field := range fields {
		if err := validateField(field); err != nil {
			return nil, err
		}
	}

	rows := make([]models.DeviceComparison, 0, len(seriesList))
	for _, series := range seriesList {
		totals := make([]models.FieldTotal, 0, len(fields))
		for _, field := range fields {
			totals = append(totals, models.FieldTotal{Field: field, Total: sum(series, field)})
		}
		rows = append(rows, models.DeviceComparison{Device: series.Device(), Totals: totals})
	}
	return rows, nil
}

// FailureSummary maps each device to its total failures, following input device order.
func FailureSummary(seriesList []*models.DeviceTelemetrySeries) []models.DeviceFailureTotal {
	summary := make([]models.DeviceFailureTotal, 0, len(seriesList))
	for _, series := range seriesList {
		summary = append(summary, models.DeviceFailureTotal{
			Device:   series.Device(),
			Failures: sum(series, models.FieldFailures),
		})
	}
	return summary
}

func validateField(field models.TelemetryField) error {
	if !field.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownField, field)
	}
	return nil
}

func sum(series *models.DeviceTelemetrySeries, field models.TelemetryField) int64 {
	var total int64
	for _, s := range series.Samples {
		total += field.Value(s)
	}
	return total
}
