package app

import (
	"context"
	"fmt"
	"net/http"
	"time"
	_ "time/tzdata" // report zones must resolve in minimal containers

	"device-telemetry/internal/events"
	"device-telemetry/internal/exporters"
	internalhttp "device-telemetry/internal/http"
	"device-telemetry/internal/models"
	"device-telemetry/internal/reports"
	"device-telemetry/internal/sessions"
	"device-telemetry/internal/shared/configs"
	"device-telemetry/internal/shared/filestorages"
	"device-telemetry/internal/shared/loggers"
	"device-telemetry/internal/stores"
	"device-telemetry/internal/streams"
	"device-telemetry/internal/synthesizers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	snapshotConsumer streams.SessionSnapshotConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "device-telemetry").
		Logger()

	defaults, err := newSessionDefaults(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report defaults: %w", err)
	}

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stream queue
	snapshotQueue := streams.NewPartitionedQueue[events.SessionSnapshotEvent]()

	// Initialize export pipeline
	snapshotStore := stores.NewSessionSnapshotStore(fileStorage)
	exportService := exporters.NewSnapshotExportService(snapshotStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	snapshotConsumer := streams.NewSessionSnapshotConsumer(snapshotQueue, exportService, consumerLogger)

	// Initialize session and report services
	sessionStore, err := stores.NewSessionStore(config.Report.MaxSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}
	snapshotProducer := streams.NewSessionSnapshotProducer(snapshotQueue)
	sessionService := sessions.NewSessionService(
		newDeviceProfiles(config.Devices),
		defaults,
		synthesizers.NewTelemetrySynthesizer(),
		sessionStore,
		snapshotProducer,
		time.Now,
	)
	reportService := reports.NewReportService(sessionStore)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(sessionService, reportService, exportService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		snapshotConsumer: snapshotConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting device-telemetry service on port %d (log_level=%s, devices=%d, export_enabled=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			len(app.config.Devices),
			app.config.Export.Enabled)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.snapshotConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Drain buffered snapshot events; the server no longer produces any
	app.snapshotConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers drained")

	// 3) Cancel the background context
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	return nil
}

// newDeviceProfiles keeps the configured device order, which is also the report order.
func newDeviceProfiles(devices []configs.DeviceConfig) []models.DeviceProfile {
	profiles := make([]models.DeviceProfile, 0, len(devices))
	for _, d := range devices {
		profiles = append(profiles, models.NewDeviceProfile(d.Name, d.TotalPackets, d.TotalRequests))
	}
	return profiles
}

func newSessionDefaults(config *configs.Config) (sessions.Defaults, error) {
	location, err := time.LoadLocation(config.Report.Timezone)
	if err != nil {
		return sessions.Defaults{}, fmt.Errorf("invalid report timezone %q: %w", config.Report.Timezone, err)
	}

	defaults := sessions.Defaults{
		StepMinutes:   config.Report.StepMinutes,
		LookbackHours: config.Report.LookbackHours,
		Location:      location,
		MaxSamples:    config.Report.MaxSamples,
		ExportEnabled: config.Export.Enabled,
	}

	if config.Report.Start != "" {
		start, err := time.Parse(time.RFC3339, config.Report.Start)
		if err != nil {
			return sessions.Defaults{}, fmt.Errorf("invalid report start %q: %w", config.Report.Start, err)
		}
		defaults.Start = &start
	}

	return defaults, nil
}
