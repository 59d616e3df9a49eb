// ABOUTME: Data models for sizing requests, options, and results
// ABOUTME: JSON-serializable structures consumed by the API and CLI

package models

import "time"

// Dimension names used in results and error reporting.
const (
	DimensionCompute = "compute"
	DimensionMemory  = "memory"
	DimensionStorage = "storage"
)

// SizingOptions tunes a single sizing run.
type SizingOptions struct {
	// UtilizationCeiling is the planning safety margin applied when
	// computing node counts (0 < ceiling <= 1, e.g. 0.95).
	UtilizationCeiling float64 `json:"utilization_ceiling" validate:"gt=0,lte=1"`
	// CoreRatio is the vCPU:pCPU oversubscription factor.
	CoreRatio float64 `json:"core_ratio" validate:"gt=0"`
	// AddSpareNode provisions one extra node (N+1) when the computed
	// total is at least one.
	AddSpareNode bool `json:"add_spare_node"`
	// AlertThreshold is the utilization percentage above which a
	// dimension is flagged in the result. Display concern only; it
	// never changes node counts. Zero means no flagging.
	AlertThreshold float64 `json:"alert_threshold" validate:"gte=0,lte=100"`
}

// SizingRequest is the full input to one sizing run.
type SizingRequest struct {
	Workloads  []Workload       `json:"workloads" validate:"dive"`
	Profile    NodeProfile      `json:"profile"`
	Redundancy RedundancyConfig `json:"redundancy"`
	Options    SizingOptions    `json:"options"`
}

// DimensionReport carries the post-sizing utilization for one resource
// dimension. Utilization is clamped to 100 for display only.
type DimensionReport struct {
	UtilizationPct float64 `json:"utilization_pct"`
	OverThreshold  bool    `json:"over_threshold"`
}

// SizingResult is the immutable output of one sizing run. It is
// produced once per call and replaced, never mutated.
type SizingResult struct {
	NodesForCompute  int    `json:"nodes_for_compute"`
	NodesForMemory   int    `json:"nodes_for_memory"`
	NodesForStorage  int    `json:"nodes_for_storage"`
	TotalNodes       int    `json:"total_nodes"`
	SpareNodeAdded   bool   `json:"spare_node_added"`
	BindingDimension string `json:"binding_dimension"`

	RawCapacityPerNodeGB    float64 `json:"raw_capacity_per_node_gb"`
	UsableCapacityPerNodeGB float64 `json:"usable_capacity_per_node_gb"`
	RawCapacityDisplay      string  `json:"raw_capacity_display"`
	UsableCapacityDisplay   string  `json:"usable_capacity_display"`

	Compute DimensionReport `json:"compute"`
	Memory  DimensionReport `json:"memory"`
	Storage DimensionReport `json:"storage"`

	Demand AggregateDemand `json:"demand"`
}

// ProfileRecommendation is one entry of a sizing comparison across
// preset node profiles.
type ProfileRecommendation struct {
	Label   string       `json:"label"`
	Profile NodeProfile  `json:"profile"`
	Result  SizingResult `json:"result"`
}

// RecommendationsResponse wraps recommendations with the request demand.
type RecommendationsResponse struct {
	Demand          AggregateDemand         `json:"demand"`
	Recommendations []ProfileRecommendation `json:"recommendations"`
}

// ErrorResponse represents an API error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// HostInfo is one discovered vSphere host, used to suggest profiles.
type HostInfo struct {
	Name        string  `json:"name"`
	Cluster     string  `json:"cluster"`
	CPUCores    int     `json:"cpu_cores"`
	CPUPackages int     `json:"cpu_packages"`
	MemoryGiB   float64 `json:"memory_gib"`
	DatastoreGB float64 `json:"datastore_gb"`
	PoweredOn   bool    `json:"powered_on"`
}

// DiscoveryResponse is the vSphere discovery endpoint payload.
type DiscoveryResponse struct {
	Datacenter string        `json:"datacenter"`
	Hosts      []HostInfo    `json:"hosts"`
	Suggested  []NodeProfile `json:"suggested_profiles"`
	Timestamp  time.Time     `json:"timestamp"`
	Cached     bool          `json:"cached"`
}
