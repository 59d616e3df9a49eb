// ABOUTME: Tests for the workload aggregator
// ABOUTME: Validates replica multiplication and input validation

package services

import (
	"errors"
	"testing"

	"serversizer/models"
)

func TestAggregate_SumsAcrossReplicas(t *testing.T) {
	// 2 workloads:
	//   web: 2 vCPU / 4 GiB / 100 GiB, 3 replicas -> 6 / 12 / 300
	//   db:  8 vCPU / 32 GiB / 500 GiB, 2 replicas -> 16 / 64 / 1000
	// Totals: 22 vCPU, 76 GiB, 1300 GiB
	workloads := []models.Workload{
		{Name: "web", VCPUs: 2, MemoryGiB: 4, StorageGiB: 100, Replicas: 3},
		{Name: "db", VCPUs: 8, MemoryGiB: 32, StorageGiB: 500, Replicas: 2},
	}

	agg := NewWorkloadAggregator()
	demand, err := agg.Aggregate(workloads)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if demand.TotalVCPUs != 22 {
		t.Errorf("Expected TotalVCPUs 22, got %d", demand.TotalVCPUs)
	}
	if demand.TotalMemoryGiB != 76 {
		t.Errorf("Expected TotalMemoryGiB 76, got %g", demand.TotalMemoryGiB)
	}
	if demand.TotalStorageGiB != 1300 {
		t.Errorf("Expected TotalStorageGiB 1300, got %g", demand.TotalStorageGiB)
	}
}

func TestAggregate_EmptyListIsValid(t *testing.T) {
	agg := NewWorkloadAggregator()
	demand, err := agg.Aggregate(nil)
	if err != nil {
		t.Fatalf("Expected no error for empty list, got %v", err)
	}
	if !demand.IsZero() {
		t.Errorf("Expected all-zero demand, got %+v", demand)
	}
}

func TestAggregate_NegativeQuantity(t *testing.T) {
	workloads := []models.Workload{
		{Name: "bad", VCPUs: -2, MemoryGiB: 4, StorageGiB: 100, Replicas: 1},
	}

	agg := NewWorkloadAggregator()
	_, err := agg.Aggregate(workloads)

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if validationErr.Field != "workloads[0].vcpus" {
		t.Errorf("Expected field workloads[0].vcpus, got %s", validationErr.Field)
	}
}

func TestAggregate_ZeroReplicas(t *testing.T) {
	workloads := []models.Workload{
		{Name: "ok", VCPUs: 2, MemoryGiB: 4, StorageGiB: 100, Replicas: 1},
		{Name: "bad", VCPUs: 2, MemoryGiB: 4, StorageGiB: 100, Replicas: 0},
	}

	agg := NewWorkloadAggregator()
	_, err := agg.Aggregate(workloads)

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if validationErr.Field != "workloads[1].replicas" {
		t.Errorf("Expected field workloads[1].replicas, got %s", validationErr.Field)
	}
}

func TestAggregate_EmptyName(t *testing.T) {
	workloads := []models.Workload{
		{Name: "", VCPUs: 2, MemoryGiB: 4, StorageGiB: 100, Replicas: 1},
	}

	agg := NewWorkloadAggregator()
	_, err := agg.Aggregate(workloads)

	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}
