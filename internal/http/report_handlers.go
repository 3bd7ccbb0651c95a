package http

import (
	"net/http"

	"device-telemetry/internal/reports"

	"github.com/go-chi/chi/v5"
)

type overviewHandler struct {
	reportService reports.ReportService
}

func NewOverviewHandler(reportService reports.ReportService) AppHttpHandler {
	return &overviewHandler{reportService: reportService}
}

// Handle processes GET /sessions/{sessionID}/overview requests.
func (h *overviewHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.Overview(r.Context(), chi.URLParam(r, paramSessionID))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}

type timelineHandler struct {
	reportService reports.ReportService
}

func NewTimelineHandler(reportService reports.ReportService) AppHttpHandler {
	return &timelineHandler{reportService: reportService}
}

// Handle processes GET /sessions/{sessionID}/devices/{device}/timeline requests.
func (h *timelineHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.Timeline(r.Context(),
		chi.URLParam(r, paramSessionID),
		chi.URLParam(r, paramDevice),
		r.URL.Query().Get(queryDate),
	)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}

type deviceTotalHandler struct {
	reportService reports.ReportService
}

func NewDeviceTotalHandler(reportService reports.ReportService) AppHttpHandler {
	return &deviceTotalHandler{reportService: reportService}
}

// Handle processes GET /sessions/{sessionID}/devices/{device}/totals requests.
func (h *deviceTotalHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.DeviceTotal(r.Context(),
		chi.URLParam(r, paramSessionID),
		chi.URLParam(r, paramDevice),
		r.URL.Query().Get(queryField),
	)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}

type comparisonHandler struct {
	reportService reports.ReportService
}

func NewComparisonHandler(reportService reports.ReportService) AppHttpHandler {
	return &comparisonHandler{reportService: reportService}
}

// Handle processes GET /sessions/{sessionID}/comparison requests.
func (h *comparisonHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.Comparison(r.Context(),
		chi.URLParam(r, paramSessionID),
		queryList(r, queryFields),
		queryList(r, queryDevices),
	)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}

type failuresHandler struct {
	reportService reports.ReportService
}

func NewFailuresHandler(reportService reports.ReportService) AppHttpHandler {
	return &failuresHandler{reportService: reportService}
}

// Handle processes GET /sessions/{sessionID}/failures requests.
func (h *failuresHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.Failures(r.Context(), chi.URLParam(r, paramSessionID))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, report)
	return nil
}
