package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	name     string
	startErr error
	events   *[]string
}

func (f *fakeJob) Name() string { return f.name }

func (f *fakeJob) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.events = append(*f.events, "start "+f.name)
	return nil
}

func (f *fakeJob) Stop() {
	*f.events = append(*f.events, "stop "+f.name)
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	var events []string
	manager := NewJobManager(
		&fakeJob{name: "tick", events: &events},
		&fakeJob{name: "allocate", events: &events},
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Equal(t, []string{"start tick", "start allocate", "stop allocate", "stop tick"}, events)
}

func TestJobManager_StartAllStopsStartedJobsOnFailure(t *testing.T) {
	var events []string
	bad := errors.New("bad cron spec")
	manager := NewJobManager(
		&fakeJob{name: "tick", events: &events},
		&fakeJob{name: "allocate", events: &events},
		&fakeJob{name: "snapshot", startErr: bad, events: &events},
	)

	err := manager.StartAll()

	require.ErrorIs(t, err, bad)
	assert.Contains(t, err.Error(), "snapshot")
	assert.Equal(t, []string{"start tick", "start allocate", "stop allocate", "stop tick"}, events)
}
