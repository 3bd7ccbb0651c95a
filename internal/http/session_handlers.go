package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"device-telemetry/internal/exporters"
	"device-telemetry/internal/models"
	"device-telemetry/internal/sessions"
	"device-telemetry/internal/shared/validators"

	"github.com/go-chi/chi/v5"
)

const maxCreateSessionBodyBytes = 4 * 1024

// createSessionRequest is the optional body of POST /sessions. Every field may be omitted.
type createSessionRequest struct {
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	StepMinutes *int       `json:"stepMinutes" validate:"omitempty,max=1440"`
	Seed        *uint64    `json:"seed"`
}

type sessionResponse struct {
	SessionID   string    `json:"sessionId"`
	CreatedAt   time.Time `json:"createdAt"`
	Seed        uint64    `json:"seed"`
	StepMinutes int       `json:"stepMinutes"`
	GridStart   time.Time `json:"gridStart"`
	GridEnd     time.Time `json:"gridEnd"`
	SampleCount int       `json:"sampleCount"`
	Devices     []string  `json:"devices"`
}

func newSessionResponse(session *models.ReportSession) sessionResponse {
	return sessionResponse{
		SessionID:   session.ID,
		CreatedAt:   session.CreatedAt,
		Seed:        session.Seed,
		StepMinutes: session.StepMinutes,
		GridStart:   session.Grid.Start(),
		GridEnd:     session.Grid.End(),
		SampleCount: session.Grid.Len(),
		Devices:     session.DeviceNames(),
	}
}

type createSessionHandler struct {
	sessionService sessions.SessionService
	validate       *validators.Validate
}

func NewCreateSessionHandler(sessionService sessions.SessionService) AppHttpHandler {
	return &createSessionHandler{sessionService: sessionService, validate: validators.New()}
}

// Handle processes POST /sessions requests.
func (h *createSessionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	req, err := h.decode(r)
	if err != nil {
		return err
	}

	session, err := h.sessionService.CreateSession(r.Context(), sessions.CreateSessionInput{
		Start:       req.Start,
		End:         req.End,
		StepMinutes: req.StepMinutes,
		Seed:        req.Seed,
	})
	if err != nil {
		return err
	}

	w.Header().Set("Location", "/sessions/"+session.ID+"/overview")
	writeJSON(w, http.StatusCreated, newSessionResponse(session))
	return nil
}

func (h *createSessionHandler) decode(r *http.Request) (*createSessionRequest, error) {
	var req createSessionRequest
	if r.Body == nil {
		return &req, nil
	}

	ct := contentType(r)
	if ct != "" && !strings.Contains(strings.ToLower(ct), "json") {
		return nil, errInvalidRequestBody(fmt.Sprintf("unsupported content type: %q", ct), nil)
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxCreateSessionBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return &req, nil
		}
		return nil, errInvalidRequestBody("invalid json", err)
	}

	if err := h.validate.Struct(&req); err != nil {
		var ve validators.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return nil, errInvalidRequestBody(fmt.Sprintf("%s must satisfy %s=%s", ve[0].Field(), ve[0].Tag(), ve[0].Param()), err)
		}
		return nil, errInvalidRequestBody("invalid request", err)
	}
	return &req, nil
}

type deleteSessionHandler struct {
	sessionService sessions.SessionService
}

func NewDeleteSessionHandler(sessionService sessions.SessionService) AppHttpHandler {
	return &deleteSessionHandler{sessionService: sessionService}
}

// Handle processes DELETE /sessions/{sessionID} requests.
func (h *deleteSessionHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.sessionService.DeleteSession(r.Context(), chi.URLParam(r, paramSessionID)); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type sessionExportHandler struct {
	exportService exporters.SnapshotExportService
}

func NewSessionExportHandler(exportService exporters.SnapshotExportService) AppHttpHandler {
	return &sessionExportHandler{exportService: exportService}
}

// Handle processes GET /sessions/{sessionID}/export requests by streaming the exported snapshot.
func (h *sessionExportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	readCloser, svcErr := h.exportService.Open(r.Context(), chi.URLParam(r, paramSessionID))
	if svcErr != nil {
		return svcErr
	}
	defer readCloser.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, readCloser)
	return nil
}
