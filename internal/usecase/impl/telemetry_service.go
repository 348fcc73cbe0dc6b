package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"mdm/config"
	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// frequentPlaceCellDegrees is the side of the grid cell used to cluster
// history points, roughly 100m at the equator.
const frequentPlaceCellDegrees = 0.001

const maxFrequentPlaces = 5

type telemetryService struct {
	deviceRepo repository.DeviceRepository
	config     *config.Config
	logger     *slog.Logger
}

// TelemetryServiceParams holds dependencies for TelemetryService, injected by Fx.
type TelemetryServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewTelemetryService creates a new telemetry service instance
func NewTelemetryService(params TelemetryServiceParams) usecase.TelemetryUsecase {
	return &telemetryService{
		deviceRepo: params.DeviceRepo,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// ReportTelemetry ingests a telemetry snapshot. Reports are resolved
// last-writer-wins by the device-side timestamp: the guard lives in the
// repository's conditional update, so concurrent reports need no locking here.
func (s *telemetryService) ReportTelemetry(ctx context.Context, input usecase.TelemetryReportInput) (bool, error) {
	if err := validateReport(input.Battery, input.Latitude, input.Longitude, input.ReportedAt); err != nil {
		return false, err
	}

	device, err := s.deviceRepo.FindManagedByIMEI(ctx, input.IMEI)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return false, domainerrors.ErrDeviceNotFound
		}

		return false, errors.Wrap(err, "failed to find device by IMEI")
	}

	applied, err := s.deviceRepo.UpdateTelemetry(ctx, device.ID,
		input.Battery, input.Latitude, input.Longitude, input.Accuracy, input.ReportedAt)
	if err != nil {
		return false, errors.Wrap(err, "failed to update telemetry")
	}

	// History retention is best effort; a failed append never fails the report.
	if applied && s.config.Telemetry.HistoryEnabled {
		s.recordHistory(ctx, device.ID, input)
	}

	return applied, nil
}

// ReportStatus ingests a management channel status callback.
func (s *telemetryService) ReportStatus(ctx context.Context, input usecase.StatusReportInput) (bool, error) {
	if input.ReportedAt.IsZero() {
		return false, domainerrors.ErrValidationFailed.WrapMessage("report timestamp is required")
	}

	device, err := s.deviceRepo.FindManagedByIMEI(ctx, input.IMEI)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return false, domainerrors.ErrDeviceNotFound
		}

		return false, errors.Wrap(err, "failed to find device by IMEI")
	}

	applied, err := s.deviceRepo.UpdateManagementStatus(ctx, device.ID, input.State, input.ReportedAt)
	if err != nil {
		return false, errors.Wrap(err, "failed to update management status")
	}

	return applied, nil
}

// GetFrequentPlaces aggregates the device's retained location history into
// its most-visited spots by snapping points onto a coarse grid.
func (s *telemetryService) GetFrequentPlaces(ctx context.Context, actor usecase.Actor, deviceID uuid.UUID) ([]*entity.FrequentPlace, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if !actor.CanAccess(device.ResellerID) {
		return nil, domainerrors.ErrForbidden
	}

	since := time.Now().Add(-s.config.Telemetry.HistoryRetention)
	points, err := s.deviceRepo.ListLocations(ctx, deviceID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return clusterPlaces(points), nil
}

func (s *telemetryService) recordHistory(ctx context.Context, deviceID uuid.UUID, input usecase.TelemetryReportInput) {
	point := &entity.LocationPoint{
		DeviceID:   deviceID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Accuracy:   input.Accuracy,
		RecordedAt: input.ReportedAt,
	}

	if err := s.deviceRepo.AppendLocation(ctx, point); err != nil {
		s.logger.WarnContext(ctx, "Failed to append location history",
			slog.String("device_id", deviceID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	cutoff := time.Now().Add(-s.config.Telemetry.HistoryRetention)
	if err := s.deviceRepo.PruneLocations(ctx, deviceID, cutoff); err != nil {
		s.logger.WarnContext(ctx, "Failed to prune location history",
			slog.String("device_id", deviceID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func validateReport(battery int, lat, lon float64, reportedAt time.Time) error {
	if battery < 0 || battery > 100 {
		return domainerrors.ErrValidationFailed.WrapMessage("battery out of range")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
	}
	if reportedAt.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("report timestamp is required")
	}

	return nil
}

// clusterPlaces snaps history points onto the grid and ranks cells by visits.
func clusterPlaces(points []*entity.LocationPoint) []*entity.FrequentPlace {
	type cell struct {
		latSum, lonSum float64
		visits         int64
		lastVisit      time.Time
	}

	cells := make(map[[2]int64]*cell)
	for _, p := range points {
		key := [2]int64{
			int64(math.Floor(p.Latitude / frequentPlaceCellDegrees)),
			int64(math.Floor(p.Longitude / frequentPlaceCellDegrees)),
		}

		c, ok := cells[key]
		if !ok {
			c = &cell{}
			cells[key] = c
		}
		c.latSum += p.Latitude
		c.lonSum += p.Longitude
		c.visits++
		if p.RecordedAt.After(c.lastVisit) {
			c.lastVisit = p.RecordedAt
		}
	}

	places := make([]*entity.FrequentPlace, 0, len(cells))
	for _, c := range cells {
		places = append(places, &entity.FrequentPlace{
			Latitude:  c.latSum / float64(c.visits),
			Longitude: c.lonSum / float64(c.visits),
			Visits:    c.visits,
			LastVisit: c.lastVisit,
		})
	}

	sort.Slice(places, func(i, j int) bool {
		if places[i].Visits != places[j].Visits {
			return places[i].Visits > places[j].Visits
		}

		return places[i].LastVisit.After(places[j].LastVisit)
	})

	if len(places) > maxFrequentPlaces {
		places = places[:maxFrequentPlaces]
	}

	return places
}
