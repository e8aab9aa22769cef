package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jwaldner/forgecheck/internal/config"
	"github.com/jwaldner/forgecheck/internal/handlers"
	"github.com/jwaldner/forgecheck/internal/logger"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	// Initialize proper logging with config level and file path
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger.Always.Printf("🚀 Forgecheck valuation validator starting - Port: %s", cfg.Port)

	if cfg.Logging.LogLevel == "verbose" {
		fmt.Printf("⚠️  VERBOSE LOGGING ENABLED - Full valuation traces will be logged to %s\n", cfg.Logging.LogFile)
	}

	logger.Info.Printf("⚙️  Pricing defaults: r=%.4f sigma=%.4f T=%.2f n=%d q=%.4f",
		cfg.Pricing.RiskFreeRate, cfg.Pricing.Volatility, cfg.Pricing.HorizonYears,
		cfg.Pricing.LatticeSteps, cfg.Pricing.DividendYield)
	logger.Info.Printf("⚙️  Decision policy: uniform_probabilities=%v tolerance=%g",
		cfg.Decision.UniformProbabilities, cfg.Decision.ProbabilityTolerance)

	// Initialize handlers
	decisionHandler := handlers.NewDecisionHandler(cfg)
	optionsHandler := handlers.NewOptionsHandler(cfg)

	// Setup router
	r := mux.NewRouter()

	// Valuation endpoints
	r.HandleFunc("/api/v1/decision/evaluate", decisionHandler.EvaluateHandler).Methods("POST")
	r.HandleFunc("/api/v1/options/price", optionsHandler.PriceHandler).Methods("POST")

	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "healthy",
			"service":   "forgecheck",
			"timestamp": time.Now().Unix(),
		})
	}).Methods("GET")

	// Start server
	fmt.Printf("🌐 Server starting on http://localhost:%s\n", cfg.Port)
	logger.Always.Printf("🌐 Server starting on http://localhost:%s", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
