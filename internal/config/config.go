package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// PricingConfig holds the documented option-pricing defaults applied when a
// request omits a parameter.
type PricingConfig struct {
	RiskFreeRate  float64 `yaml:"risk_free_rate"` // r
	Volatility    float64 `yaml:"volatility"`     // sigma
	HorizonYears  float64 `yaml:"horizon_years"`  // T
	LatticeSteps  int     `yaml:"lattice_steps"`  // n
	DividendYield float64 `yaml:"dividend_yield"` // q
}

// DecisionConfig holds the decision-tree evaluation policy.
type DecisionConfig struct {
	// UniformProbabilities enables the explicit fallback to a uniform
	// distribution when every child of a chance node lacks a probability.
	UniformProbabilities bool    `yaml:"uniform_probabilities"`
	ProbabilityTolerance float64 `yaml:"probability_tolerance"`
}

type Config struct {
	// Server settings
	Port string

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
	// Option pricing defaults
	Pricing PricingConfig `yaml:"pricing"`
	// Decision tree policy
	Decision DecisionConfig `yaml:"decision"`
}

// YAMLConfig mirrors config.yaml. Pointer fields distinguish "absent" from
// zero so the file can explicitly disable a default-on policy.
type YAMLConfig struct {
	Port     string        `yaml:"port"`
	Logging  LoggingConfig `yaml:"logging"`
	Pricing  struct {
		RiskFreeRate  *float64 `yaml:"risk_free_rate"`
		Volatility    *float64 `yaml:"volatility"`
		HorizonYears  *float64 `yaml:"horizon_years"`
		LatticeSteps  *int     `yaml:"lattice_steps"`
		DividendYield *float64 `yaml:"dividend_yield"`
	} `yaml:"pricing"`
	Decision struct {
		UniformProbabilities *bool    `yaml:"uniform_probabilities"`
		ProbabilityTolerance *float64 `yaml:"probability_tolerance"`
	} `yaml:"decision"`
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", "forgecheck.log"),
		},
		Pricing: PricingConfig{
			RiskFreeRate:  getEnvFloat("PRICING_RISK_FREE_RATE", 0.05),
			Volatility:    getEnvFloat("PRICING_VOLATILITY", 0.3),
			HorizonYears:  getEnvFloat("PRICING_HORIZON_YEARS", 1.0),
			LatticeSteps:  getEnvInt("PRICING_LATTICE_STEPS", 100),
			DividendYield: getEnvFloat("PRICING_DIVIDEND_YIELD", 0.0),
		},
		Decision: DecisionConfig{
			UniformProbabilities: getEnvBool("DECISION_UNIFORM_PROBABILITIES", true),
			ProbabilityTolerance: getEnvFloat("DECISION_PROBABILITY_TOLERANCE", 1e-6),
		},
	}

	// Overlay values from config.yaml when present
	if yamlCfg := loadYAMLConfig(); yamlCfg != nil {
		if yamlCfg.Port != "" {
			cfg.Port = yamlCfg.Port
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}
		if yamlCfg.Pricing.RiskFreeRate != nil {
			cfg.Pricing.RiskFreeRate = *yamlCfg.Pricing.RiskFreeRate
		}
		if yamlCfg.Pricing.Volatility != nil {
			cfg.Pricing.Volatility = *yamlCfg.Pricing.Volatility
		}
		if yamlCfg.Pricing.HorizonYears != nil {
			cfg.Pricing.HorizonYears = *yamlCfg.Pricing.HorizonYears
		}
		if yamlCfg.Pricing.LatticeSteps != nil {
			cfg.Pricing.LatticeSteps = *yamlCfg.Pricing.LatticeSteps
		}
		if yamlCfg.Pricing.DividendYield != nil {
			cfg.Pricing.DividendYield = *yamlCfg.Pricing.DividendYield
		}
		if yamlCfg.Decision.UniformProbabilities != nil {
			cfg.Decision.UniformProbabilities = *yamlCfg.Decision.UniformProbabilities
		}
		if yamlCfg.Decision.ProbabilityTolerance != nil {
			cfg.Decision.ProbabilityTolerance = *yamlCfg.Decision.ProbabilityTolerance
		}
	}

	return cfg
}

// loadYAMLConfig reads config.yaml from the working directory, or the path
// in FORGECHECK_CONFIG when set. Missing file is not an error.
func loadYAMLConfig() *YAMLConfig {
	path := getEnv("FORGECHECK_CONFIG", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil
	}
	return &yamlCfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
