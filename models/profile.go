// ABOUTME: Data models for candidate server hardware profiles
// ABOUTME: Includes chassis form factors that bound disks per node

package models

import "fmt"

// FormFactor identifies the server chassis type, which bounds how many
// disks a node can physically hold.
type FormFactor string

const (
	FormFactor1U FormFactor = "1U"
	FormFactor2U FormFactor = "2U"
)

// MaxDisks returns the maximum disk count the chassis supports.
// Unknown form factors return 0 so profile validation rejects them.
func (f FormFactor) MaxDisks() int {
	switch f {
	case FormFactor1U:
		return 10
	case FormFactor2U:
		return 24
	default:
		return 0
	}
}

// NodeProfile describes one homogeneous server configuration under
// evaluation. Immutable for the duration of a sizing run.
type NodeProfile struct {
	CoresPerProcessor int        `json:"cores_per_processor" validate:"gte=0"`
	Processors        int        `json:"processors" validate:"gt=0"`
	MemoryGiB         float64    `json:"memory_gib" validate:"gte=0"`
	Disks             int        `json:"disks" validate:"gt=0"`
	DiskCapacityGB    float64    `json:"disk_capacity_gb" validate:"gte=0"`
	FormFactor        FormFactor `json:"form_factor" validate:"required"`
}

// CoresPerNode returns total physical cores across all processors.
func (p NodeProfile) CoresPerNode() int {
	return p.CoresPerProcessor * p.Processors
}

// RawCapacityGB returns total raw disk capacity per node, before any
// redundancy or data reduction is applied.
func (p NodeProfile) RawCapacityGB() float64 {
	return float64(p.Disks) * p.DiskCapacityGB
}

// Validate checks chassis constraints that struct tags cannot express.
func (p NodeProfile) Validate() error {
	max := p.FormFactor.MaxDisks()
	if max == 0 {
		return &ConfigurationError{Message: "unknown form factor '" + string(p.FormFactor) + "'"}
	}
	if p.Disks > max {
		return &ConfigurationError{
			Message: fmt.Sprintf("%d disks exceed the %s chassis maximum of %d", p.Disks, p.FormFactor, max),
		}
	}
	return nil
}

// Processor is one row of the externally supplied processor catalog.
// The engine reads Cores for sizing; the benchmark score and power
// figures surface in reporting only.
type Processor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Cores        int     `json:"cores"`
	FrequencyGHz float64 `json:"frequency_ghz"`
	Generation   string  `json:"generation"`
	SpecIntScore int     `json:"specint_score"`
	TDPWatts     int     `json:"tdp_watts"`
}
