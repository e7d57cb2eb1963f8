package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type tierRatesFile struct {
	Tiers map[string]float64 `yaml:"tiers"`
}

// LoadTierRates reads a table like:
//
//	tiers:
//	  gold: 0.20
//	  silver: 0.10
//
// An empty path returns nil so callers fall back to the default table.
func LoadTierRates(path string) (map[string]float64, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tier rates %s: %w", path, err)
	}

	var doc tierRatesFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse tier rates %s: %w", path, err)
	}
	if len(doc.Tiers) == 0 {
		return nil, fmt.Errorf("tier rates %s: no tiers defined", path)
	}

	rates := make(map[string]float64, len(doc.Tiers))
	for tier, rate := range doc.Tiers {
		key := strings.ToLower(strings.TrimSpace(tier))
		if key == "" {
			return nil, fmt.Errorf("tier rates %s: blank tier name", path)
		}
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("tier rates %s: rate for %q must be within [0, 1]", path, tier)
		}
		rates[key] = rate
	}
	return rates, nil
}
