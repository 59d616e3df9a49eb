// ABOUTME: Processor catalog loader backed by an external JSON data source
// ABOUTME: Falls back to a built-in catalog when no file is configured

package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"serversizer/models"
)

// ProcessorCatalog supplies the processor rows used to build node
// profiles. Retrieval and ordering are this service's concern; the
// sizing engine only reads core counts and reporting figures.
type ProcessorCatalog struct {
	path string
}

// NewProcessorCatalog creates a catalog backed by the JSON file at
// path. An empty path means the built-in catalog is used.
func NewProcessorCatalog(path string) *ProcessorCatalog {
	return &ProcessorCatalog{path: path}
}

// Processors returns the catalog rows. File-backed catalogs are read
// on every call; the handler layer caches the response.
func (c *ProcessorCatalog) Processors() ([]models.Processor, error) {
	if c.path == "" {
		return defaultProcessors(), nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading processor catalog %s: %w", c.path, err)
	}

	var procs []models.Processor
	if err := json.Unmarshal(data, &procs); err != nil {
		return nil, fmt.Errorf("parsing processor catalog %s: %w", c.path, err)
	}

	for i, p := range procs {
		if p.ID == "" || p.Cores <= 0 {
			return nil, fmt.Errorf("processor catalog %s: entry %d missing id or positive core count", c.path, i)
		}
	}

	slog.Debug("Processor catalog loaded", "path", c.path, "entries", len(procs))
	return procs, nil
}

// defaultProcessors is the built-in catalog used when no external data
// source is configured.
func defaultProcessors() []models.Processor {
	return []models.Processor{
		{ID: "xeon-4314", Name: "Intel Xeon Silver 4314", Cores: 16, FrequencyGHz: 2.4, Generation: "Ice Lake", SpecIntScore: 155, TDPWatts: 135},
		{ID: "xeon-6330", Name: "Intel Xeon Gold 6330", Cores: 28, FrequencyGHz: 2.0, Generation: "Ice Lake", SpecIntScore: 230, TDPWatts: 205},
		{ID: "xeon-6430", Name: "Intel Xeon Gold 6430", Cores: 32, FrequencyGHz: 2.1, Generation: "Sapphire Rapids", SpecIntScore: 301, TDPWatts: 270},
		{ID: "xeon-8480", Name: "Intel Xeon Platinum 8480+", Cores: 56, FrequencyGHz: 2.0, Generation: "Sapphire Rapids", SpecIntScore: 492, TDPWatts: 350},
		{ID: "epyc-7443", Name: "AMD EPYC 7443", Cores: 24, FrequencyGHz: 2.85, Generation: "Milan", SpecIntScore: 250, TDPWatts: 200},
		{ID: "epyc-7713", Name: "AMD EPYC 7713", Cores: 64, FrequencyGHz: 2.0, Generation: "Milan", SpecIntScore: 440, TDPWatts: 225},
		{ID: "epyc-9354", Name: "AMD EPYC 9354", Cores: 32, FrequencyGHz: 3.25, Generation: "Genoa", SpecIntScore: 388, TDPWatts: 280},
		{ID: "epyc-9654", Name: "AMD EPYC 9654", Cores: 96, FrequencyGHz: 2.4, Generation: "Genoa", SpecIntScore: 725, TDPWatts: 360},
	}
}
