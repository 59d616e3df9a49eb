// ABOUTME: Node sizer computing minimum homogeneous node counts per dimension
// ABOUTME: Orchestrates aggregation, redundancy, and utilization reporting

package services

import (
	"math"

	"serversizer/models"
)

// NodeSizer computes the minimum node count per resource dimension.
type NodeSizer struct{}

// NewNodeSizer creates a new node sizer.
func NewNodeSizer() *NodeSizer {
	return &NodeSizer{}
}

// nodesFor returns ceil(demand / (capacity * ceiling)), the minimum
// node count that satisfies demand under the utilization ceiling.
// Zero demand needs zero nodes.
func nodesFor(demand, capacityPerNode, ceiling float64) int {
	if demand <= 0 {
		return 0
	}
	return int(math.Ceil(demand / (capacityPerNode * ceiling)))
}

// Size computes per-dimension and total node counts.
//
// Compute demand is first converted from vCPUs to physical cores via
// the oversubscription ratio (rounded up), then divided by cores per
// node. The total is the maximum across dimensions; the per-dimension
// breakdown is retained so callers can see the binding constraint.
// A spare node is added only when the pre-spare total is at least one.
func (s *NodeSizer) Size(
	demand models.AggregateDemand,
	profile models.NodeProfile,
	usableCapacityPerNodeGB float64,
	opts models.SizingOptions,
) (models.SizingResult, error) {
	coresPerNode := profile.CoresPerNode()

	// A zero-capacity node cannot host any workload. Reported rather
	// than silently producing infinite or NaN node counts.
	if coresPerNode <= 0 {
		return models.SizingResult{}, &models.DivisionError{Dimension: models.DimensionCompute}
	}
	if profile.MemoryGiB <= 0 {
		return models.SizingResult{}, &models.DivisionError{Dimension: models.DimensionMemory}
	}
	if usableCapacityPerNodeGB <= 0 {
		return models.SizingResult{}, &models.DivisionError{Dimension: models.DimensionStorage}
	}

	coreDemand := math.Ceil(float64(demand.TotalVCPUs) / opts.CoreRatio)

	nodesForCompute := nodesFor(coreDemand, float64(coresPerNode), opts.UtilizationCeiling)
	nodesForMemory := nodesFor(demand.TotalMemoryGiB, profile.MemoryGiB, opts.UtilizationCeiling)
	nodesForStorage := nodesFor(demand.TotalStorageGiB, usableCapacityPerNodeGB, opts.UtilizationCeiling)

	totalNodes := nodesForCompute
	binding := models.DimensionCompute
	if nodesForMemory > totalNodes {
		totalNodes = nodesForMemory
		binding = models.DimensionMemory
	}
	if nodesForStorage > totalNodes {
		totalNodes = nodesForStorage
		binding = models.DimensionStorage
	}

	spareAdded := false
	if opts.AddSpareNode && totalNodes >= 1 {
		totalNodes++
		spareAdded = true
	}

	return models.SizingResult{
		NodesForCompute:         nodesForCompute,
		NodesForMemory:          nodesForMemory,
		NodesForStorage:         nodesForStorage,
		TotalNodes:              totalNodes,
		SpareNodeAdded:          spareAdded,
		BindingDimension:        binding,
		UsableCapacityPerNodeGB: usableCapacityPerNodeGB,
		RawCapacityPerNodeGB:    profile.RawCapacityGB(),
		Demand:                  demand,
	}, nil
}

// SizingCalculator is the engine entry point. It wires the aggregator,
// redundancy model, sizer, and utilization reporter into one pure,
// synchronous call.
type SizingCalculator struct {
	aggregator *WorkloadAggregator
	redundancy *RedundancyModel
	sizer      *NodeSizer
	reporter   *UtilizationReporter
}

// NewSizingCalculator creates a fully wired sizing calculator.
func NewSizingCalculator() *SizingCalculator {
	return &SizingCalculator{
		aggregator: NewWorkloadAggregator(),
		redundancy: NewRedundancyModel(),
		sizer:      NewNodeSizer(),
		reporter:   NewUtilizationReporter(),
	}
}

// Redundancy exposes the redundancy model for table listings.
func (c *SizingCalculator) Redundancy() *RedundancyModel {
	return c.redundancy
}

// SizeCluster runs one complete sizing calculation. Deterministic:
// identical inputs always produce identical results, and the returned
// result is never mutated afterwards.
func (c *SizingCalculator) SizeCluster(
	workloads []models.Workload,
	profile models.NodeProfile,
	redundancy models.RedundancyConfig,
	opts models.SizingOptions,
) (models.SizingResult, error) {
	if err := validateOptions(opts); err != nil {
		return models.SizingResult{}, err
	}
	if err := profile.Validate(); err != nil {
		return models.SizingResult{}, err
	}

	demand, err := c.aggregator.Aggregate(workloads)
	if err != nil {
		return models.SizingResult{}, err
	}

	usablePerNode, err := c.redundancy.UsableCapacityPerNode(profile, redundancy)
	if err != nil {
		return models.SizingResult{}, err
	}

	result, err := c.sizer.Size(demand, profile, usablePerNode, opts)
	if err != nil {
		return models.SizingResult{}, err
	}

	c.reporter.Report(&result, profile, opts)

	result.RawCapacityDisplay = FormatStorage(result.RawCapacityPerNodeGB)
	result.UsableCapacityDisplay = FormatStorage(result.UsableCapacityPerNodeGB)

	return result, nil
}

// validateOptions checks option ranges the sizer depends on.
func validateOptions(opts models.SizingOptions) error {
	if opts.UtilizationCeiling <= 0 || opts.UtilizationCeiling > 1 {
		return &models.ValidationError{
			Field:   "options.utilization_ceiling",
			Message: "must be in (0, 1]",
		}
	}
	if opts.CoreRatio <= 0 {
		return &models.ValidationError{
			Field:   "options.core_ratio",
			Message: "must be positive",
		}
	}
	if opts.AlertThreshold < 0 || opts.AlertThreshold > 100 {
		return &models.ValidationError{
			Field:   "options.alert_threshold",
			Message: "must be between 0 and 100",
		}
	}
	return nil
}
