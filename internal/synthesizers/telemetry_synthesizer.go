package synthesizers

import (
	"errors"
	"fmt"

	"device-telemetry/internal/models"
)

var (
	ErrEmptyGrid     = errors.New("grid has no entries")
	ErrInvalidBudget = errors.New("device traffic budget must be at least 1")
)

const (
	maxPacketLoss  = 2
	maxRequestLoss = 1
)

type TelemetrySynthesizer interface {
	// Synthesize produces one sample per grid instant for the profile, drawing from rng.
	Synthesize(profile models.DeviceProfile, grid models.TimeGrid, rng RandomSource) (*models.DeviceTelemetrySeries, error)
}

type telemetrySynthesizer struct{}

func NewTelemetrySynthesizer() TelemetrySynthesizer {
	return &telemetrySynthesizer{}
}

func (s *telemetrySynthesizer) Synthesize(profile models.DeviceProfile, grid models.TimeGrid, rng RandomSource) (*models.DeviceTelemetrySeries, error) {
	if grid.Len() < 1 {
		return nil, ErrEmptyGrid
	}
	if profile.TotalPackets < 1 || profile.TotalRequests < 1 {
		return nil, fmt.Errorf("%w: device=%q, totalPackets=%d, totalRequests=%d",
			ErrInvalidBudget, profile.Name, profile.TotalPackets, profile.TotalRequests)
	}

	packetCap := PerIntervalCap(profile.TotalPackets, grid.Len())
	requestCap := PerIntervalCap(profile.TotalRequests, grid.Len())

	samples := make([]models.TelemetrySample, 0, grid.Len())
	for _, instant := range grid {
		packetsSent := 1 + int64(rng.IntN(int(packetCap)))
		packetsReceived := max(0, packetsSent-int64(rng.IntN(maxPacketLoss+1)))

		requestsSent := 1 + int64(rng.IntN(int(requestCap)))
		requestsReceived := max(0, requestsSent-int64(rng.IntN(maxRequestLoss+1)))

		samples = append(samples, models.TelemetrySample{
			Timestamp:        instant,
			PacketsSent:      packetsSent,
			PacketsReceived:  packetsReceived,
			RequestsSent:     requestsSent,
			RequestsReceived: requestsReceived,
			Failures:         requestsSent - requestsReceived,
		})
	}

	return &models.DeviceTelemetrySeries{
		Profile: profile,
		Samples: samples,
	}, nil
}

// PerIntervalCap is max(1, floor(total / gridLen)): the largest per-sample draw that keeps
// any single interval from exceeding its fair share of the budget.
func PerIntervalCap(total int64, gridLen int) int64 {
	if gridLen <= 0 {
		return 1
	}
	return max(1, total/int64(gridLen))
}
