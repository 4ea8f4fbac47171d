// Package jobs provides scheduled background tasks for the port engine.
//
// Jobs are built on github.com/robfig/cron/v3 with six-field (seconds)
// expressions taken from configuration.
//
// # Available Jobs
//
//  1. ClockTickJob advances the logical clock
//  2. QueuedVesselAllocationJob docks waiting vessels at free berths, highest priority first
//  3. CapacitySnapshotJob publishes berth occupancy to Prometheus
//
// # Usage
//
//	manager := jobs.NewJobManager(tickJob, allocationJob, snapshotJob)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// The allocation job treats an empty queue and a queue no free berth can
// serve as normal outcomes and logs everything else. A failed start stops
// the jobs that were already running.
package jobs
