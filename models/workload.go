// ABOUTME: Data models for workload definitions and aggregated demand
// ABOUTME: Workloads are caller-constructed; the engine only reads them

package models

// Workload represents one application or service to be placed on the
// cluster, scaled by its replica count.
type Workload struct {
	Name       string  `json:"name" validate:"required"`
	VCPUs      int     `json:"vcpus" validate:"gt=0"`
	MemoryGiB  float64 `json:"memory_gib" validate:"gt=0"`
	StorageGiB float64 `json:"storage_gib" validate:"gt=0"`
	Replicas   int     `json:"replicas" validate:"gt=0"`
}

// AggregateDemand is the summed resource demand across all workloads,
// each multiplied by its replica count.
type AggregateDemand struct {
	TotalVCPUs      int     `json:"total_vcpus"`
	TotalMemoryGiB  float64 `json:"total_memory_gib"`
	TotalStorageGiB float64 `json:"total_storage_gib"`
}

// IsZero reports whether no resource demand exists in any dimension.
func (d AggregateDemand) IsZero() bool {
	return d.TotalVCPUs == 0 && d.TotalMemoryGiB == 0 && d.TotalStorageGiB == 0
}
