package sessions

import (
	"context"
	"errors"
	"time"

	"device-telemetry/internal/models"
	"device-telemetry/internal/shared/loggers"
	"device-telemetry/internal/shared/metrics"
	"device-telemetry/internal/shared/svcerrors"
	"device-telemetry/internal/shared/ulid"
	"device-telemetry/internal/stores"
	"device-telemetry/internal/streams"
	"device-telemetry/internal/synthesizers"
	"device-telemetry/internal/timegrids"
)

// CreateSessionInput holds the optional overrides of a new session. Nil fields fall back to
// the service defaults.
type CreateSessionInput struct {
	Start       *time.Time
	End         *time.Time
	StepMinutes *int
	Seed        *uint64
}

// Defaults configures how a session window is resolved when the caller leaves it open.
type Defaults struct {
	StepMinutes   int
	LookbackHours int
	Start         *time.Time // fixed window start; nil means end - LookbackHours
	Location      *time.Location
	MaxSamples    int
	ExportEnabled bool
}

//go:generate mockgen -source=session_service.go -destination=./mocks/session_service_mock.go -package=mocks
type SessionService interface {
	// CreateSession synthesizes every device series once and stores them as one immutable session.
	CreateSession(ctx context.Context, input CreateSessionInput) (*models.ReportSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.ReportSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type sessionService struct {
	profiles        []models.DeviceProfile
	defaults        Defaults
	synthesizer     synthesizers.TelemetrySynthesizer
	sessionStore    stores.SessionStore
	snapshotPublish streams.SessionSnapshotProducer
	clock           func() time.Time
}

func NewSessionService(
	profiles []models.DeviceProfile,
	defaults Defaults,
	synthesizer synthesizers.TelemetrySynthesizer,
	sessionStore stores.SessionStore,
	snapshotProducer streams.SessionSnapshotProducer,
	clock func() time.Time,
) SessionService {
	if defaults.Location == nil {
		defaults.Location = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &sessionService{
		profiles:        profiles,
		defaults:        defaults,
		synthesizer:     synthesizer,
		sessionStore:    sessionStore,
		snapshotPublish: snapshotProducer,
		clock:           clock,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, input CreateSessionInput) (*models.ReportSession, error) {
	session, svcErr := s.createSession(ctx, input)
	if svcErr != nil {
		metricSessionCreatedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	metricSessionCreatedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return session, nil
}

func (s *sessionService) createSession(ctx context.Context, input CreateSessionInput) (*models.ReportSession, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	now := s.clock()

	start, end, stepMinutes := s.resolveWindow(now, input)
	if n := timegrids.Len(start, end, stepMinutes); n > s.defaults.MaxSamples {
		return nil, errTooManySamples(n, s.defaults.MaxSamples)
	}

	grid, err := timegrids.BuildGrid(start, end, stepMinutes)
	if err != nil {
		switch {
		case errors.Is(err, timegrids.ErrInvalidRange):
			return nil, errInvalidRange(err)
		case errors.Is(err, timegrids.ErrInvalidStep):
			return nil, errInvalidStep(err)
		default:
			return nil, svcerrors.NewInternalErrorUndefined(err)
		}
	}

	seed := synthesizers.NewSeed()
	if input.Seed != nil {
		seed = *input.Seed
	}
	rng := synthesizers.NewSeededSource(seed)

	// One source for the whole session, consumed in device order, so a seed pins every series.
	series := make([]*models.DeviceTelemetrySeries, 0, len(s.profiles))
	for _, profile := range s.profiles {
		deviceSeries, err := s.synthesizer.Synthesize(profile, grid, rng)
		if err != nil {
			switch {
			case errors.Is(err, synthesizers.ErrEmptyGrid):
				return nil, errEmptyGrid(err)
			case errors.Is(err, synthesizers.ErrInvalidBudget):
				return nil, errInternalInvalidBudget(err)
			default:
				return nil, svcerrors.NewInternalErrorUndefined(err)
			}
		}
		series = append(series, deviceSeries)
		metricSamplesSynthesizedTotal.WithLabelValues(profile.Name).Add(float64(deviceSeries.Len()))
	}

	session := &models.ReportSession{
		ID:          ulid.NewULIDAt(now),
		CreatedAt:   now.UTC(),
		Seed:        seed,
		StepMinutes: stepMinutes,
		Grid:        grid,
		Series:      series,
	}

	if err := s.sessionStore.Put(ctx, session); err != nil {
		return nil, errInternalSessionStoreFailed(err)
	}

	if s.defaults.ExportEnabled {
		if err := s.snapshotPublish.Produce(ctx, session); err != nil {
			// The caller never learns the ID, so the session must not hold a store slot.
			if delErr := s.sessionStore.Delete(context.WithoutCancel(ctx), session.ID); delErr != nil {
				logger.Warn().Err(delErr).Str(loggers.FieldSessionID, session.ID).Msg("failed to remove unpublished session")
			}
			return nil, errInternalSnapshotPublishFailed(err)
		}
	}

	logger.Info().
		Str(loggers.FieldSessionID, session.ID).
		Int(loggers.FieldSampleCount, grid.Len()).
		Int("device_count", len(series)).
		Uint64("seed", seed).
		Msg("report session created")
	return session, nil
}

// resolveWindow fills the open parts of the window. The default end is the clock reading
// truncated to the step so grid instants fall on step boundaries.
func (s *sessionService) resolveWindow(now time.Time, input CreateSessionInput) (time.Time, time.Time, int) {
	stepMinutes := s.defaults.StepMinutes
	if input.StepMinutes != nil {
		stepMinutes = *input.StepMinutes
	}

	var end time.Time
	switch {
	case input.End != nil:
		end = *input.End
	case stepMinutes > 0:
		end = now.Truncate(time.Duration(stepMinutes) * time.Minute)
	default:
		end = now
	}

	var start time.Time
	switch {
	case input.Start != nil:
		start = *input.Start
	case s.defaults.Start != nil:
		start = *s.defaults.Start
	default:
		start = end.Add(-time.Duration(s.defaults.LookbackHours) * time.Hour)
	}

	return start.In(s.defaults.Location), end.In(s.defaults.Location), stepMinutes
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.ReportSession, error) {
	session, err := s.sessionStore.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stores.ErrSessionNotFound) {
			return nil, errSessionNotFound(sessionID, err)
		}
		return nil, errInternalSessionStoreFailed(err)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, stores.ErrSessionNotFound) {
			return errSessionNotFound(sessionID, err)
		}
		return errInternalSessionStoreFailed(err)
	}
	loggers.Ctx(ctx).Info().Str(loggers.FieldSessionID, sessionID).Msg("report session deleted")
	return nil
}
