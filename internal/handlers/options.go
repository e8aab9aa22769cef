package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jwaldner/forgecheck/internal/config"
	"github.com/jwaldner/forgecheck/internal/logger"
	"github.com/jwaldner/forgecheck/internal/models"
	"github.com/jwaldner/forgecheck/internal/pricing"
)

const (
	ModelBlackScholes = "black_scholes"
	ModelBinomial     = "binomial"
)

// OptionsHandler prices options over HTTP.
type OptionsHandler struct {
	cfg *config.Config
}

func NewOptionsHandler(cfg *config.Config) *OptionsHandler {
	return &OptionsHandler{cfg: cfg}
}

// PriceHandler prices one option with the requested model, filling omitted
// parameters from the configured defaults. S and K are mandatory.
func (h *OptionsHandler) PriceHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.OptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOptionFailure(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.S == nil || req.K == nil {
		writeOptionFailure(w, http.StatusBadRequest, "S and K are required")
		return
	}

	var kind pricing.OptionKind
	switch req.OptionType {
	case "call":
		kind = pricing.Call
	case "put":
		kind = pricing.Put
	default:
		writeOptionFailure(w, http.StatusBadRequest, "option_type must be 'call' or 'put'")
		return
	}

	model := req.Model
	if model == "" {
		model = ModelBlackScholes
	}

	defaults := h.cfg.Pricing
	spec := pricing.OptionSpec{
		S:     *req.S,
		K:     *req.K,
		R:     floatOr(req.R, defaults.RiskFreeRate),
		Sigma: floatOr(req.Sigma, defaults.Volatility),
		T:     floatOr(req.T, defaults.HorizonYears),
		Q:     floatOr(req.Q, defaults.DividendYield),
		Kind:  kind,
		Style: pricing.European,
	}
	if req.American != nil && *req.American {
		spec.Style = pricing.American
	}

	var results *models.OptionResults
	switch model {
	case ModelBlackScholes:
		res, err := pricing.BlackScholes(spec)
		if err != nil {
			writeOptionFailure(w, http.StatusOK, err.Error())
			return
		}
		results = &models.OptionResults{
			Price:     res.Price,
			Model:     model,
			Intrinsic: res.Intrinsic,
			TimeValue: res.TimeValue,
		}
		if res.Greeks != nil {
			results.Greeks = &models.GreeksDTO{
				Delta: res.Greeks.Delta,
				Gamma: res.Greeks.Gamma,
				Theta: res.Greeks.Theta,
				Vega:  res.Greeks.Vega,
				Rho:   res.Greeks.Rho,
			}
		}
	case ModelBinomial:
		spec.Steps = defaults.LatticeSteps
		if req.N != nil {
			spec.Steps = *req.N
		}
		res, err := pricing.Binomial(spec)
		if err != nil {
			writeOptionFailure(w, http.StatusOK, err.Error())
			return
		}
		results = &models.OptionResults{
			Price:     res.Price,
			Model:     model,
			U:         &res.U,
			D:         &res.D,
			P:         &res.P,
			Intrinsic: res.Intrinsic,
			TimeValue: res.TimeValue,
		}
	default:
		writeOptionFailure(w, http.StatusBadRequest, "model must be 'black_scholes' or 'binomial'")
		return
	}

	logger.Info.Printf("💰 Priced %s %s: S=%.4f K=%.4f price=%.6f", model, kind, spec.S, spec.K, results.Price)

	if err := json.NewEncoder(w).Encode(models.OptionResponse{Success: true, Results: results}); err != nil {
		logger.Error.Printf("💰 Response encoding failed: %v", err)
	}
}

func writeOptionFailure(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.OptionResponse{Success: false, Error: msg})
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
