package usecase

import (
	"context"
	"time"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// TelemetryReportInput is the periodic snapshot a device posts.
type TelemetryReportInput struct {
	IMEI       string
	Battery    int
	Latitude   float64
	Longitude  float64
	Accuracy   float64
	ReportedAt time.Time // Device-side timestamp of the reading.
}

// StatusReportInput is a management channel status callback.
type StatusReportInput struct {
	IMEI       string
	State      string
	ReportedAt time.Time
}

// TelemetryUsecase defines the interface for device report ingestion and the
// derived console views. Reports resolve last-writer-wins by device-side
// timestamp; stale reports are acknowledged and dropped.
type TelemetryUsecase interface {
	// ReportTelemetry ingests a telemetry snapshot. Returns false when the
	// report was stale and the snapshot left untouched.
	ReportTelemetry(ctx context.Context, input TelemetryReportInput) (bool, error)

	// ReportStatus ingests a management channel status callback.
	ReportStatus(ctx context.Context, input StatusReportInput) (bool, error)

	// GetFrequentPlaces aggregates the device's retained location history
	// into its most-visited spots.
	GetFrequentPlaces(ctx context.Context, actor Actor, deviceID uuid.UUID) ([]*entity.FrequentPlace, error)
}
