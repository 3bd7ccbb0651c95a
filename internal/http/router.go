package http

import (
	"net/http"

	"device-telemetry/internal/exporters"
	"device-telemetry/internal/reports"
	"device-telemetry/internal/sessions"
	"device-telemetry/internal/shared/loggers"
	"device-telemetry/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	sessionService sessions.SessionService,
	reportService reports.ReportService,
	exportService exporters.SnapshotExportService,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Route("/sessions", func(r chi.Router) {
		r.Post("/", errorHandlingAdapter(NewCreateSessionHandler(sessionService)))
		r.Route("/{"+paramSessionID+"}", func(r chi.Router) {
			r.Delete("/", errorHandlingAdapter(NewDeleteSessionHandler(sessionService)))
			r.Get("/export", errorHandlingAdapter(NewSessionExportHandler(exportService)))
			r.Get("/overview", errorHandlingAdapter(NewOverviewHandler(reportService)))
			r.Get("/comparison", errorHandlingAdapter(NewComparisonHandler(reportService)))
			r.Get("/failures", errorHandlingAdapter(NewFailuresHandler(reportService)))
			r.Get("/devices/{"+paramDevice+"}/timeline", errorHandlingAdapter(NewTimelineHandler(reportService)))
			r.Get("/devices/{"+paramDevice+"}/totals", errorHandlingAdapter(NewDeviceTotalHandler(reportService)))
		})
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
