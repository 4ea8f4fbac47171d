package jobs

import (
	"context"
	"errors"
	"log/slog"

	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type queueAllocator interface {
	Handle(ctx context.Context, cmd commands.AllocateQueuedVesselCommand) (commands.Allocation, error)
}

// QueuedVesselAllocationJob docks waiting vessels at free berths on behalf
// of the system operator.
type QueuedVesselAllocationJob struct {
	handler  queueAllocator
	operator string
	spec     string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQueuedVesselAllocationJob runs on spec, a six-field cron expression.
// operator must hold the port-operator role.
func NewQueuedVesselAllocationJob(
	handler queueAllocator,
	operator string,
	spec string,
	logger *slog.Logger,
) *QueuedVesselAllocationJob {
	return &QueuedVesselAllocationJob{
		handler:  handler,
		operator: operator,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "queued_vessel_allocation_job"),
	}
}

func (j *QueuedVesselAllocationJob) Name() string {
	return "queued vessel allocation job"
}

func (j *QueuedVesselAllocationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queued vessel allocation job started", "spec", j.spec)
	return nil
}

func (j *QueuedVesselAllocationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Queued vessel allocation job stopped")
}

// run allocates until the queue is empty or no waiting vessel fits a free
// berth, and returns the number of vessels docked.
func (j *QueuedVesselAllocationJob) run(ctx context.Context) int {
	docked := 0
	for {
		cmd, err := commands.NewAllocateQueuedVesselCommand(j.operator)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queued vessel allocation job misconfigured", "error", err)
			return docked
		}

		allocation, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			if !errors.Is(err, commands.ErrQueueIsEmpty) && !errors.Is(err, services.ErrNoSuitableBerth) {
				j.logger.ErrorContext(ctx, "Queued vessel allocation job failed", "error", err)
			}
			return docked
		}

		docked++
		j.logger.InfoContext(ctx, "Vessel docked from queue",
			"vessel_id", uint64(allocation.VesselID),
			"berth_id", uint64(allocation.BerthID),
		)
	}
}
