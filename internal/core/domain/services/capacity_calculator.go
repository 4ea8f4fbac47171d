package services

import (
	"fmt"
	"math"
	"strings"

	"seaport/internal/pkg/errs"

	"gonum.org/v1/gonum/stat"
)

// Throughput rates in capacity units per tick, by cargo type.
const (
	ThroughputContainer = 30
	ThroughputBulk      = 50
	ThroughputLiquid    = 80
	ThroughputGeneral   = 20
)

// PortCapacity is the port-wide berth occupancy snapshot.
type PortCapacity struct {
	TotalBerths    int
	CurrentLoad    int64
	AvailableSlots int64
	Utilization    float64
}

// EfficiencyStats summarises efficiency scores of completed operations.
type EfficiencyStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// CapacityCalculator derives read-only figures from registry state.
type CapacityCalculator struct{}

func NewCapacityCalculator() CapacityCalculator {
	return CapacityCalculator{}
}

// PortCapacity combines the berth count with the berths-in-use counter.
func (c CapacityCalculator) PortCapacity(totalBerths int, inUse int64) PortCapacity {
	out := PortCapacity{
		TotalBerths:    totalBerths,
		CurrentLoad:    inUse,
		AvailableSlots: max(int64(totalBerths)-inUse, 0),
	}
	if totalBerths > 0 {
		out.Utilization = 100 * float64(inUse) / float64(totalBerths)
	}
	return out
}

// Throughput returns the handling rate for a cargo type. Unrecognised types
// are handled at the general cargo rate.
func (c CapacityCalculator) Throughput(cargoType string) int {
	switch strings.ToLower(strings.TrimSpace(cargoType)) {
	case "container":
		return ThroughputContainer
	case "bulk":
		return ThroughputBulk
	case "liquid":
		return ThroughputLiquid
	default:
		return ThroughputGeneral
	}
}

// TurnaroundEstimate is the number of ticks needed to work a vessel's full
// cargo capacity, rounded up.
func (c CapacityCalculator) TurnaroundEstimate(cargoCapacity int, cargoType string) (int64, error) {
	if cargoCapacity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("cargo capacity", fmt.Errorf("%d is not greater than 0", cargoCapacity))
	}
	rate := c.Throughput(cargoType)
	return int64(math.Ceil(float64(cargoCapacity) / float64(rate))), nil
}

// Efficiency computes summary statistics. The standard deviation of fewer
// than two samples is reported as zero.
func (c CapacityCalculator) Efficiency(scores []float64) EfficiencyStats {
	if len(scores) == 0 {
		return EfficiencyStats{}
	}

	out := EfficiencyStats{Count: len(scores), Min: scores[0], Max: scores[0]}
	for _, s := range scores[1:] {
		out.Min = min(out.Min, s)
		out.Max = max(out.Max, s)
	}

	if len(scores) == 1 {
		out.Mean = scores[0]
		return out
	}
	out.Mean, out.StdDev = stat.MeanStdDev(scores, nil)
	return out
}
