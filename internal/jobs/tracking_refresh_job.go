package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"

	"github.com/robfig/cron/v3"
)

// TrackingRefreshJob periodically polls the carrier for every in-flight
// shipment and advances the lifecycle along reported tracking edges.
//
// Only statuses the carrier can still move are polled; pending, created and
// terminal shipments are skipped. Each shipment refresh goes through the
// track command handler, so the compare-and-swap discipline protects the
// job against racing interactive requests.
type TrackingRefreshJob struct {
	uowFactory commands.ShipmentUoWFactory
	handler    commands.TrackShipmentCommandHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTrackingRefreshJob creates a job polling tracking on the given cron
// schedule (six-field format with seconds).
func NewTrackingRefreshJob(
	uowFactory commands.ShipmentUoWFactory,
	handler commands.TrackShipmentCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TrackingRefreshJob {
	return &TrackingRefreshJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tracking_refresh_job"),
	}
}

// Start begins the tracking refresh job on its schedule.
func (j *TrackingRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.refreshAll)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the tracking refresh job.
func (j *TrackingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking refresh job stopped")
}

func (j *TrackingRefreshJob) refreshAll() {
	ctx := context.Background()

	inFlight, err := j.uowFactory.Create().ShipmentRepository().GetAllInStatuses(ctx, pollableStatuses())
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking refresh job failed to list shipments", "error", err)
		return
	}

	for _, s := range inFlight {
		cmd, cmdErr := commands.NewTrackShipmentCommand(s.ID(), "")
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Tracking refresh job failed to build command",
				"shipmentId", s.ID().String(), "error", cmdErr)
			continue
		}

		// One stale shipment must not stall the rest of the sweep.
		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.WarnContext(ctx, "Tracking refresh failed for shipment",
				"shipmentId", s.ID().String(), "error", handleErr)
		}
	}
}

func pollableStatuses() []shipment.Status {
	return []shipment.Status{
		shipment.PickupScheduled,
		shipment.Shipped,
		shipment.InTransit,
		shipment.OutForDelivery,
	}
}
