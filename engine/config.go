package engine

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"leny-backend/models"
)

// LoadAgentConfigs reads the per-specialty tinting config from a YAML file
// keyed by specialty value. A missing file is not fatal: tinting is then
// disabled and an empty map is returned.
func LoadAgentConfigs(path string) (map[models.Specialty]models.AgentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[engine] agent config %s not found, tinting disabled", path)
			return map[models.Specialty]models.AgentConfig{}, nil
		}
		return nil, fmt.Errorf("read agent configs: %w", err)
	}

	var parsed map[string]models.AgentConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse agent configs: %w", err)
	}

	configs := make(map[models.Specialty]models.AgentConfig, len(parsed))
	for key, cfg := range parsed {
		configs[models.Specialty(key)] = cfg
	}
	return configs, nil
}

// applyTinting appends the specialty's configured extra tests to the
// diagnostic strategy, in config order. It never removes or reorders
// existing entries; specialties without a config entry pass through
// untouched.
func applyTinting(data models.ClinicalData, specialty models.Specialty, configs map[models.Specialty]models.AgentConfig) models.ClinicalData {
	cfg, ok := configs[specialty]
	if !ok {
		return data
	}
	for _, test := range cfg.AddTests {
		data.DiagnosticStrategy = append(data.DiagnosticStrategy, test)
	}
	return data
}
