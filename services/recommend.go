// ABOUTME: Sizing recommendations across preset node profiles
// ABOUTME: Runs the engine per preset so callers can compare alternatives

package services

import (
	"fmt"

	"serversizer/models"
)

// Common node profile presets for recommendations
var nodeProfilePresets = []models.NodeProfile{
	{CoresPerProcessor: 16, Processors: 2, MemoryGiB: 256, Disks: 8, DiskCapacityGB: 1920, FormFactor: models.FormFactor1U},
	{CoresPerProcessor: 24, Processors: 2, MemoryGiB: 384, Disks: 10, DiskCapacityGB: 1920, FormFactor: models.FormFactor1U},
	{CoresPerProcessor: 32, Processors: 2, MemoryGiB: 512, Disks: 12, DiskCapacityGB: 3840, FormFactor: models.FormFactor2U},
	{CoresPerProcessor: 32, Processors: 2, MemoryGiB: 768, Disks: 16, DiskCapacityGB: 3840, FormFactor: models.FormFactor2U},
	{CoresPerProcessor: 48, Processors: 2, MemoryGiB: 1024, Disks: 24, DiskCapacityGB: 7680, FormFactor: models.FormFactor2U},
}

// Recommend runs the sizing calculation against each preset profile
// and returns the results that produced a valid sizing. Request-level
// failures (bad workloads, unsupported redundancy) propagate; only
// preset-specific failures skip that preset.
func (c *SizingCalculator) Recommend(
	workloads []models.Workload,
	redundancy models.RedundancyConfig,
	opts models.SizingOptions,
) (models.RecommendationsResponse, error) {
	if err := validateOptions(opts); err != nil {
		return models.RecommendationsResponse{}, err
	}

	demand, err := c.aggregator.Aggregate(workloads)
	if err != nil {
		return models.RecommendationsResponse{}, err
	}

	// The redundancy config is preset-independent: if it is unsupported
	// it fails for every preset, so reject it up front instead of
	// returning an empty comparison.
	if _, err := c.redundancy.EffectiveMultiplier(redundancy); err != nil {
		return models.RecommendationsResponse{}, err
	}

	resp := models.RecommendationsResponse{Demand: demand}

	for _, preset := range nodeProfilePresets {
		result, err := c.SizeCluster(workloads, preset, redundancy, opts)
		if err != nil {
			continue
		}
		resp.Recommendations = append(resp.Recommendations, models.ProfileRecommendation{
			Label:   profileLabel(preset),
			Profile: preset,
			Result:  result,
		})
	}

	return resp, nil
}

// profileLabel renders a short human label like "2x32c / 768 GiB / 16x3.75 TiB".
func profileLabel(p models.NodeProfile) string {
	return fmt.Sprintf("%dx%dc / %.0f GiB / %dx%s",
		p.Processors, p.CoresPerProcessor, p.MemoryGiB, p.Disks, FormatStorage(p.DiskCapacityGB))
}
