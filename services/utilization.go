// ABOUTME: Utilization reporter recomputing per-dimension usage percentages
// ABOUTME: Flags dimensions exceeding a caller-supplied alert threshold

package services

import (
	"math"

	"serversizer/models"
)

// UtilizationReporter recomputes per-dimension utilization against the
// chosen total node count. The alert threshold is a display concern,
// independent of the sizing-time utilization ceiling.
type UtilizationReporter struct{}

// NewUtilizationReporter creates a new reporter.
func NewUtilizationReporter() *UtilizationReporter {
	return &UtilizationReporter{}
}

// utilization returns min(100, 100 * demand / (nodes * capacityPerNode)).
// The clamp is for display only; it never feeds back into sizing.
func utilization(demand float64, nodes int, capacityPerNode float64) float64 {
	if nodes <= 0 || capacityPerNode <= 0 {
		return 0
	}
	pct := 100 * demand / (float64(nodes) * capacityPerNode)
	return math.Min(100, pct)
}

// Report fills the per-dimension utilization figures on the result.
// Compute utilization is measured in physical cores: vCPU demand is
// converted through the oversubscription ratio first, matching how the
// sizer counted nodes.
func (r *UtilizationReporter) Report(result *models.SizingResult, profile models.NodeProfile, opts models.SizingOptions) {
	coreDemand := math.Ceil(float64(result.Demand.TotalVCPUs) / opts.CoreRatio)

	result.Compute.UtilizationPct = utilization(coreDemand, result.TotalNodes, float64(profile.CoresPerNode()))
	result.Memory.UtilizationPct = utilization(result.Demand.TotalMemoryGiB, result.TotalNodes, profile.MemoryGiB)
	result.Storage.UtilizationPct = utilization(result.Demand.TotalStorageGiB, result.TotalNodes, result.UsableCapacityPerNodeGB)

	if opts.AlertThreshold > 0 {
		result.Compute.OverThreshold = result.Compute.UtilizationPct > opts.AlertThreshold
		result.Memory.OverThreshold = result.Memory.UtilizationPct > opts.AlertThreshold
		result.Storage.OverThreshold = result.Storage.UtilizationPct > opts.AlertThreshold
	}
}
