// ABOUTME: Data models for storage redundancy configuration
// ABOUTME: Closed enums over fault tolerance levels and schemes

package models

// FaultToleranceLevel is the number of simultaneous failures the
// storage redundancy must survive without data loss.
type FaultToleranceLevel int

const (
	FTT1 FaultToleranceLevel = 1
	FTT2 FaultToleranceLevel = 2
	FTT3 FaultToleranceLevel = 3
)

// Valid reports whether the level is one of the supported values.
func (f FaultToleranceLevel) Valid() bool {
	return f >= FTT1 && f <= FTT3
}

// RedundancyScheme selects how redundant copies are laid out.
type RedundancyScheme string

const (
	SchemeMirror        RedundancyScheme = "mirror"
	SchemeErasureCoding RedundancyScheme = "erasure_coding"
)

// RedundancyConfig describes the redundancy applied to raw disk
// capacity plus the data reduction expected from compression/dedup.
type RedundancyConfig struct {
	FTT                FaultToleranceLevel `json:"ftt" validate:"gte=1,lte=3"`
	Scheme             RedundancyScheme    `json:"scheme" validate:"oneof=mirror erasure_coding"`
	DataReductionRatio float64             `json:"data_reduction_ratio" validate:"gte=1"`
}

// SchemeInfo describes one supported (FTT, scheme) combination for the
// redundancy table endpoint.
type SchemeInfo struct {
	FTT            FaultToleranceLevel `json:"ftt"`
	Scheme         RedundancyScheme    `json:"scheme"`
	Label          string              `json:"label"`
	UsableFraction float64             `json:"usable_fraction"`
}
