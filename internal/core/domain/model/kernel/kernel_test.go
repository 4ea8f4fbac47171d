package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
)

func TestNewDimensions(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		beam    int
		draft   int
		wantErr bool
	}{
		{name: "valid hull", length: 200, beam: 30, draft: 10},
		{name: "minimal hull", length: 1, beam: 1, draft: 1},
		{name: "zero length", length: 0, beam: 30, draft: 10, wantErr: true},
		{name: "negative beam", length: 200, beam: -1, draft: 10, wantErr: true},
		{name: "zero draft", length: 200, beam: 30, draft: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := kernel.NewDimensions(tt.length, tt.beam, tt.draft)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			require.NoError(t, d.Validate())
			assert.Equal(t, tt.length, d.Length())
			assert.Equal(t, tt.beam, d.Beam())
			assert.Equal(t, tt.draft, d.Draft())
		})
	}
}

func TestNewDimensions_ReportsEveryViolation(t *testing.T) {
	_, err := kernel.NewDimensions(0, 0, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "length")
	assert.Contains(t, err.Error(), "beam")
	assert.Contains(t, err.Error(), "draft")
}

func TestDimensions_ZeroValueIsNotConstructed(t *testing.T) {
	var d kernel.Dimensions

	require.ErrorIs(t, d.Validate(), kernel.ErrDimensionsAreNotConstructed)
}

func TestDimensions_FitsWithin(t *testing.T) {
	envelope, _ := kernel.NewDimensions(250, 35, 12)

	tests := []struct {
		name     string
		hull     [3]int
		fits     bool
		exceeded []string
	}{
		{name: "fits on all axes", hull: [3]int{200, 30, 10}, fits: true},
		{name: "exact envelope fits", hull: [3]int{250, 35, 12}, fits: true},
		{name: "too long", hull: [3]int{251, 30, 10}, exceeded: []string{"length"}},
		{name: "too wide", hull: [3]int{200, 36, 10}, exceeded: []string{"beam"}},
		{name: "too deep", hull: [3]int{200, 30, 13}, exceeded: []string{"draft"}},
		{name: "too large everywhere", hull: [3]int{300, 40, 20}, exceeded: []string{"length", "beam", "draft"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hull, err := kernel.NewDimensions(tt.hull[0], tt.hull[1], tt.hull[2])
			require.NoError(t, err)

			assert.Equal(t, tt.fits, hull.FitsWithin(envelope))
			assert.Equal(t, tt.exceeded, hull.Exceeding(envelope))
		})
	}
}

func TestID(t *testing.T) {
	_, err := kernel.NewID(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	id, err := kernel.NewID(42)
	require.NoError(t, err)
	assert.Equal(t, "42", id.String())
}

func TestEntityClass_Validate(t *testing.T) {
	for _, c := range []kernel.EntityClass{
		kernel.VesselClass, kernel.BerthClass, kernel.ScheduleClass,
		kernel.ContainerClass, kernel.OperationClass, kernel.TransportClass, kernel.QueueClass,
	} {
		require.NoError(t, c.Validate(), c)
	}
	require.ErrorIs(t, kernel.EntityClass("crew").Validate(), errs.ErrValueIsInvalid)
}

func TestTick(t *testing.T) {
	_, err := kernel.NewTick(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	start, err := kernel.NewTick(100)
	require.NoError(t, err)

	later := start.Add(20)
	assert.Equal(t, int64(20), later.Since(start))
	assert.True(t, start.Before(later))
	assert.True(t, later.After(start))
}

func TestPrincipalAndRole(t *testing.T) {
	_, err := kernel.NewPrincipal("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	p, err := kernel.NewPrincipal(" harbour-master ")
	require.NoError(t, err)
	assert.Equal(t, kernel.Principal("harbour-master"), p)

	r, err := kernel.ParseRole("port-operator")
	require.NoError(t, err)
	assert.Equal(t, kernel.RolePortOperator, r)

	_, err = kernel.ParseRole("captain")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
