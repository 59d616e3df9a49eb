// ABOUTME: Redundancy model mapping (FTT, scheme) to usable capacity fractions
// ABOUTME: Closed lookup table; unsupported combinations are rejected

package services

import (
	"fmt"
	"sort"

	"serversizer/models"
)

// schemeKey identifies one entry of the redundancy table.
type schemeKey struct {
	ftt    models.FaultToleranceLevel
	scheme models.RedundancyScheme
}

// usableFractions is the closed table of supported redundancy
// combinations. The fractions are fixed per combination rather than
// derived from a formula: parity efficiency depends on the stripe
// layout chosen for each FTT level, and the layouts here (RAID-5 3+1,
// RAID-6 4+2) are the standard ones for homogeneous server clusters.
// Erasure coding above FTT=2 is not offered.
var usableFractions = map[schemeKey]float64{
	{models.FTT1, models.SchemeMirror}: 1.0 / 2.0,
	{models.FTT2, models.SchemeMirror}: 1.0 / 3.0,
	{models.FTT3, models.SchemeMirror}: 1.0 / 4.0,

	{models.FTT1, models.SchemeErasureCoding}: 3.0 / 4.0, // RAID-5, 3+1
	{models.FTT2, models.SchemeErasureCoding}: 2.0 / 3.0, // RAID-6, 4+2
}

// schemeLabels names each supported combination for display.
var schemeLabels = map[schemeKey]string{
	{models.FTT1, models.SchemeMirror}:        "FTT=1 Mirror (RAID-1)",
	{models.FTT2, models.SchemeMirror}:        "FTT=2 Mirror (3-way)",
	{models.FTT3, models.SchemeMirror}:        "FTT=3 Mirror (4-way)",
	{models.FTT1, models.SchemeErasureCoding}: "FTT=1 Erasure Coding (RAID-5)",
	{models.FTT2, models.SchemeErasureCoding}: "FTT=2 Erasure Coding (RAID-6)",
}

// RedundancyModel computes usable capacity under a redundancy config.
type RedundancyModel struct{}

// NewRedundancyModel creates a new redundancy model.
func NewRedundancyModel() *RedundancyModel {
	return &RedundancyModel{}
}

// UsableFraction returns the fraction of raw disk capacity left usable
// by the redundancy scheme alone, before data reduction. Unsupported
// (FTT, scheme) combinations fail with a ConfigurationError.
func (m *RedundancyModel) UsableFraction(ftt models.FaultToleranceLevel, scheme models.RedundancyScheme) (float64, error) {
	if !ftt.Valid() {
		return 0, &models.ConfigurationError{
			Message: fmt.Sprintf("faults to tolerate must be 1, 2, or 3, got %d", int(ftt)),
		}
	}
	fraction, ok := usableFractions[schemeKey{ftt: ftt, scheme: scheme}]
	if !ok {
		return 0, &models.ConfigurationError{
			Message: fmt.Sprintf("unsupported combination: FTT=%d with scheme '%s'", int(ftt), scheme),
		}
	}
	return fraction, nil
}

// EffectiveMultiplier returns the combined usable-capacity multiplier:
// redundancy fraction times the data reduction ratio. Data reduction
// applies to logical data before redundancy overhead, so the combined
// multiplier is capped at 1.0: a disk never reports more usable than
// raw bytes per redundancy copy.
func (m *RedundancyModel) EffectiveMultiplier(cfg models.RedundancyConfig) (float64, error) {
	if cfg.DataReductionRatio < 1.0 {
		return 0, &models.ConfigurationError{
			Message: fmt.Sprintf("data reduction ratio must be >= 1.0, got %g", cfg.DataReductionRatio),
		}
	}
	fraction, err := m.UsableFraction(cfg.FTT, cfg.Scheme)
	if err != nil {
		return 0, err
	}
	multiplier := fraction * cfg.DataReductionRatio
	if multiplier > 1.0 {
		multiplier = 1.0
	}
	return multiplier, nil
}

// UsableCapacityPerNode returns the usable storage per node in GB for
// the given profile and redundancy config.
func (m *RedundancyModel) UsableCapacityPerNode(profile models.NodeProfile, cfg models.RedundancyConfig) (float64, error) {
	multiplier, err := m.EffectiveMultiplier(cfg)
	if err != nil {
		return 0, err
	}
	usablePerDisk := profile.DiskCapacityGB * multiplier
	return usablePerDisk * float64(profile.Disks), nil
}

// SupportedSchemes lists every supported (FTT, scheme) combination in
// ascending FTT order, mirror before erasure coding.
func (m *RedundancyModel) SupportedSchemes() []models.SchemeInfo {
	infos := make([]models.SchemeInfo, 0, len(usableFractions))
	for key, fraction := range usableFractions {
		infos = append(infos, models.SchemeInfo{
			FTT:            key.ftt,
			Scheme:         key.scheme,
			Label:          schemeLabels[key],
			UsableFraction: fraction,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].FTT != infos[j].FTT {
			return infos[i].FTT < infos[j].FTT
		}
		return infos[i].Scheme == models.SchemeMirror && infos[j].Scheme != models.SchemeMirror
	})
	return infos
}
