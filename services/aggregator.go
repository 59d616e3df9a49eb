// ABOUTME: Workload aggregator summing per-workload demand across replicas
// ABOUTME: Produces total vCPU, memory, and storage demand for sizing

package services

import (
	"fmt"

	"serversizer/models"
)

// WorkloadAggregator sums workload definitions into aggregate demand.
type WorkloadAggregator struct{}

// NewWorkloadAggregator creates a new aggregator.
func NewWorkloadAggregator() *WorkloadAggregator {
	return &WorkloadAggregator{}
}

// Aggregate computes total demand as sum(perWorkloadValue * replicas)
// for each dimension. An empty workload list is valid and yields
// all-zero totals. Any negative quantity or non-positive replica count
// fails with a ValidationError.
func (a *WorkloadAggregator) Aggregate(workloads []models.Workload) (models.AggregateDemand, error) {
	var demand models.AggregateDemand

	for i, w := range workloads {
		if w.Name == "" {
			return models.AggregateDemand{}, &models.ValidationError{
				Field:   fmt.Sprintf("workloads[%d].name", i),
				Message: "name must not be empty",
			}
		}
		if w.VCPUs < 0 {
			return models.AggregateDemand{}, &models.ValidationError{
				Field:   fmt.Sprintf("workloads[%d].vcpus", i),
				Message: fmt.Sprintf("must not be negative, got %d", w.VCPUs),
			}
		}
		if w.MemoryGiB < 0 {
			return models.AggregateDemand{}, &models.ValidationError{
				Field:   fmt.Sprintf("workloads[%d].memory_gib", i),
				Message: fmt.Sprintf("must not be negative, got %g", w.MemoryGiB),
			}
		}
		if w.StorageGiB < 0 {
			return models.AggregateDemand{}, &models.ValidationError{
				Field:   fmt.Sprintf("workloads[%d].storage_gib", i),
				Message: fmt.Sprintf("must not be negative, got %g", w.StorageGiB),
			}
		}
		if w.Replicas <= 0 {
			return models.AggregateDemand{}, &models.ValidationError{
				Field:   fmt.Sprintf("workloads[%d].replicas", i),
				Message: fmt.Sprintf("must be positive, got %d", w.Replicas),
			}
		}

		replicas := float64(w.Replicas)
		demand.TotalVCPUs += w.VCPUs * w.Replicas
		demand.TotalMemoryGiB += w.MemoryGiB * replicas
		demand.TotalStorageGiB += w.StorageGiB * replicas
	}

	return demand, nil
}
