package jobs

import (
	"context"
	"log/slog"

	"seaport/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type capacityReader interface {
	Handle(ctx context.Context, query queries.GetPortCapacityQuery) (queries.GetPortCapacityQueryResponse, error)
}

type capacitySink interface {
	RecordCapacity(totalBerths int, inUse int64, utilization float64)
}

// CapacitySnapshotJob publishes the port capacity to the metrics sink.
type CapacitySnapshotJob struct {
	reader capacityReader
	sink   capacitySink
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

func NewCapacitySnapshotJob(reader capacityReader, sink capacitySink, spec string, logger *slog.Logger) *CapacitySnapshotJob {
	return &CapacitySnapshotJob{
		reader: reader,
		sink:   sink,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "capacity_snapshot_job"),
	}
}

func (j *CapacitySnapshotJob) Name() string {
	return "capacity snapshot job"
}

func (j *CapacitySnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity snapshot job started", "spec", j.spec)
	return nil
}

func (j *CapacitySnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Capacity snapshot job stopped")
}

func (j *CapacitySnapshotJob) run(ctx context.Context) {
	c, err := j.reader.Handle(ctx, queries.NewGetPortCapacityQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Capacity snapshot job failed", "error", err)
		return
	}
	j.sink.RecordCapacity(c.TotalBerths, c.CurrentLoad, c.Utilization)
}
