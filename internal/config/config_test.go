package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	os.Unsetenv("PRICING_RISK_FREE_RATE")
	os.Unsetenv("PRICING_LATTICE_STEPS")
	os.Unsetenv("DECISION_UNIFORM_PROBABILITIES")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Pricing.RiskFreeRate != 0.05 {
		t.Errorf("Expected default risk-free rate 0.05, got %v", cfg.Pricing.RiskFreeRate)
	}
	if cfg.Pricing.Volatility != 0.3 {
		t.Errorf("Expected default volatility 0.3, got %v", cfg.Pricing.Volatility)
	}
	if cfg.Pricing.LatticeSteps != 100 {
		t.Errorf("Expected default lattice steps 100, got %d", cfg.Pricing.LatticeSteps)
	}
	if !cfg.Decision.UniformProbabilities {
		t.Errorf("Expected uniform probabilities enabled by default")
	}
	if cfg.Decision.ProbabilityTolerance != 1e-6 {
		t.Errorf("Expected default tolerance 1e-6, got %v", cfg.Decision.ProbabilityTolerance)
	}
}

func TestEnvOverrides(t *testing.T) {
	os.Setenv("PRICING_LATTICE_STEPS", "250")
	os.Setenv("DECISION_UNIFORM_PROBABILITIES", "false")
	defer os.Unsetenv("PRICING_LATTICE_STEPS")
	defer os.Unsetenv("DECISION_UNIFORM_PROBABILITIES")

	cfg := Load()

	if cfg.Pricing.LatticeSteps != 250 {
		t.Errorf("Expected lattice steps 250 from env, got %d", cfg.Pricing.LatticeSteps)
	}
	if cfg.Decision.UniformProbabilities {
		t.Errorf("Expected uniform probabilities disabled from env")
	}
}

func TestYAMLOverlay(t *testing.T) {
	yamlContent := `
port: "9090"
pricing:
  volatility: 0.25
decision:
  uniform_probabilities: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	os.Setenv("FORGECHECK_CONFIG", path)
	defer os.Unsetenv("FORGECHECK_CONFIG")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090 from YAML, got %s", cfg.Port)
	}
	if cfg.Pricing.Volatility != 0.25 {
		t.Errorf("Expected volatility 0.25 from YAML, got %v", cfg.Pricing.Volatility)
	}
	if cfg.Decision.UniformProbabilities {
		t.Errorf("Expected uniform probabilities disabled from YAML")
	}
	// Keys absent from the file keep their defaults
	if cfg.Pricing.RiskFreeRate != 0.05 {
		t.Errorf("Expected default risk-free rate to survive overlay, got %v", cfg.Pricing.RiskFreeRate)
	}
}
