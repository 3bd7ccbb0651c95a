package reports

import (
	"context"
	"errors"

	"device-telemetry/internal/aggregators"
	"device-telemetry/internal/models"
	"device-telemetry/internal/shared/metrics"
	"device-telemetry/internal/shared/svcerrors"
	"device-telemetry/internal/stores"
)

// ReportService renders read-only views of a stored session. Every view reads the series
// generated when the session was created; nothing here synthesizes data.
//
//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	Overview(ctx context.Context, sessionID string) (*OverviewReport, error)
	// Timeline returns one device's samples. An empty date returns the whole series.
	Timeline(ctx context.Context, sessionID, device, date string) (*TimelineReport, error)
	// Comparison totals fields per device. Empty fields means every field; empty devices means every device.
	Comparison(ctx context.Context, sessionID string, fields, devices []string) (*ComparisonReport, error)
	Failures(ctx context.Context, sessionID string) (*FailureReport, error)
	DeviceTotal(ctx context.Context, sessionID, device, field string) (*DeviceTotalReport, error)
}

type reportService struct {
	sessionStore stores.SessionStore
}

func NewReportService(sessionStore stores.SessionStore) ReportService {
	return &reportService{sessionStore: sessionStore}
}

func (s *reportService) Overview(ctx context.Context, sessionID string) (*OverviewReport, error) {
	report, svcErr := s.overview(ctx, sessionID)
	return observe(viewOverview, report, svcErr)
}

func (s *reportService) overview(ctx context.Context, sessionID string) (*OverviewReport, *svcerrors.ServiceError) {
	session, svcErr := s.loadSession(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	fields := models.AllTelemetryFields()
	totals := make([]models.FieldTotal, 0, len(fields))
	for _, field := range fields {
		total, err := aggregators.CombinedTotal(session.SeriesList(), field)
		if err != nil {
			return nil, errUnknownField(err)
		}
		totals = append(totals, models.FieldTotal{Field: field, Total: total})
	}

	return &OverviewReport{
		SessionID:   session.ID,
		CreatedAt:   session.CreatedAt,
		Seed:        session.Seed,
		StepMinutes: session.StepMinutes,
		GridStart:   session.Grid.Start(),
		GridEnd:     session.Grid.End(),
		SampleCount: session.Grid.Len(),
		Devices:     session.DeviceNames(),
		Totals:      totals,
		Failures:    failureReport(session),
	}, nil
}

func (s *reportService) Timeline(ctx context.Context, sessionID, device, date string) (*TimelineReport, error) {
	report, svcErr := s.timeline(ctx, sessionID, device, date)
	return observe(viewTimeline, report, svcErr)
}

func (s *reportService) timeline(ctx context.Context, sessionID, device, date string) (*TimelineReport, *svcerrors.ServiceError) {
	var reportDate *models.ReportDate
	if date != "" {
		parsed, err := models.ParseReportDate(date)
		if err != nil {
			return nil, errInvalidDate(err)
		}
		reportDate = &parsed
	}

	session, svcErr := s.loadSession(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	series, ok := session.SeriesFor(device)
	if !ok {
		return nil, errUnknownDevice(device)
	}

	report := &TimelineReport{SessionID: session.ID, Device: device, Samples: series.Samples}
	if reportDate != nil {
		report.Date = reportDate.String()
		report.Samples = aggregators.FilterByDate(series, *reportDate)
	}
	report.NoData = len(report.Samples) == 0
	return report, nil
}

func (s *reportService) Comparison(ctx context.Context, sessionID string, fields, devices []string) (*ComparisonReport, error) {
	report, svcErr := s.comparison(ctx, sessionID, fields, devices)
	return observe(viewComparison, report, svcErr)
}

func (s *reportService) comparison(ctx context.Context, sessionID string, fieldNames, devices []string) (*ComparisonReport, *svcerrors.ServiceError) {
	fields := models.AllTelemetryFields()
	if len(fieldNames) > 0 {
		fields = make([]models.TelemetryField, 0, len(fieldNames))
		for _, name := range fieldNames {
			field, err := models.ParseTelemetryField(name)
			if err != nil {
				return nil, errUnknownField(err)
			}
			fields = append(fields, field)
		}
	}

	session, svcErr := s.loadSession(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	seriesList := session.SeriesList()
	if len(devices) > 0 {
		seriesList = make([]*models.DeviceTelemetrySeries, 0, len(devices))
		for _, device := range devices {
			series, ok := session.SeriesFor(device)
			if !ok {
				return nil, errUnknownDevice(device)
			}
			seriesList = append(seriesList, series)
		}
	}

	rows, err := aggregators.CompareDevices(seriesList, fields)
	if err != nil {
		return nil, errUnknownField(err)
	}
	return &ComparisonReport{SessionID: session.ID, Fields: fields, Devices: rows}, nil
}

func (s *reportService) Failures(ctx context.Context, sessionID string) (*FailureReport, error) {
	report, svcErr := s.failures(ctx, sessionID)
	return observe(viewFailures, report, svcErr)
}

func (s *reportService) failures(ctx context.Context, sessionID string) (*FailureReport, *svcerrors.ServiceError) {
	session, svcErr := s.loadSession(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	return failureReport(session), nil
}

func (s *reportService) DeviceTotal(ctx context.Context, sessionID, device, field string) (*DeviceTotalReport, error) {
	report, svcErr := s.deviceTotal(ctx, sessionID, device, field)
	return observe(viewDeviceTotal, report, svcErr)
}

func (s *reportService) deviceTotal(ctx context.Context, sessionID, device, fieldName string) (*DeviceTotalReport, *svcerrors.ServiceError) {
	field, err := models.ParseTelemetryField(fieldName)
	if err != nil {
		return nil, errUnknownField(err)
	}

	session, svcErr := s.loadSession(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	series, ok := session.SeriesFor(device)
	if !ok {
		return nil, errUnknownDevice(device)
	}

	total, err := aggregators.TotalFor(series, field)
	if err != nil {
		return nil, errUnknownField(err)
	}
	return &DeviceTotalReport{SessionID: session.ID, Device: device, Field: field, Total: total}, nil
}

func (s *reportService) loadSession(ctx context.Context, sessionID string) (*models.ReportSession, *svcerrors.ServiceError) {
	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stores.ErrSessionNotFound) {
			return nil, errSessionNotFound(sessionID, err)
		}
		return nil, errInternalSessionStoreFailed(err)
	}
	return session, nil
}

func failureReport(session *models.ReportSession) *FailureReport {
	devices := aggregators.FailureSummary(session.SeriesList())
	var total int64
	for _, d := range devices {
		total += d.Failures
	}
	return &FailureReport{SessionID: session.ID, Devices: devices, Total: total}
}

// observe counts the render outcome and converts a nil *ServiceError into a nil error.
func observe[T any](view string, report *T, svcErr *svcerrors.ServiceError) (*T, error) {
	if svcErr != nil {
		metricReportRenderedTotal.WithLabelValues(view, svcErr.Code).Inc()
		return nil, svcErr
	}
	metricReportRenderedTotal.WithLabelValues(view, metrics.ValueNoError).Inc()
	return report, nil
}
