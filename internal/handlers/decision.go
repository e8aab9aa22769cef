package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jwaldner/forgecheck/internal/config"
	"github.com/jwaldner/forgecheck/internal/decision"
	"github.com/jwaldner/forgecheck/internal/logger"
	"github.com/jwaldner/forgecheck/internal/models"
)

// DecisionHandler evaluates decision trees over HTTP.
type DecisionHandler struct {
	cfg *config.Config
}

func NewDecisionHandler(cfg *config.Config) *DecisionHandler {
	return &DecisionHandler{cfg: cfg}
}

// EvaluateHandler rolls back a decision tree and returns the annotated tree,
// the optimal path and per-alternative risk profiles. Malformed requests get
// a 400; engine validation failures return a parseable failure envelope so
// the comparison driver can always branch on success.
func (h *DecisionHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.TreeNode
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecisionFailure(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		writeDecisionFailure(w, http.StatusBadRequest, "tree root requires a name")
		return
	}

	root := buildTree(&req, true)
	pol := decision.Policy{
		UniformProbabilities: h.cfg.Decision.UniformProbabilities,
		ProbTolerance:        h.cfg.Decision.ProbabilityTolerance,
	}

	rootEMV, err := decision.Rollback(root, pol)
	if err != nil {
		logger.Warn.Printf("🌳 Tree evaluation rejected: %v", err)
		writeDecisionFailure(w, http.StatusOK, err.Error())
		return
	}

	path, err := decision.OptimalPath(root)
	if err != nil {
		writeDecisionFailure(w, http.StatusOK, err.Error())
		return
	}

	// One risk profile per alternative of the root decision; for a
	// non-decision root the whole tree is the single alternative.
	alternatives := []*decision.Node{root}
	if root.Kind == decision.KindDecision {
		alternatives = root.Children
	}
	profiles := make(map[string]models.RiskProfile, len(alternatives))
	for _, alt := range alternatives {
		outcomes, err := decision.RiskProfile(alt)
		if err != nil {
			writeDecisionFailure(w, http.StatusOK, err.Error())
			return
		}
		profiles[alt.Name] = toRiskProfile(outcomes)
	}

	logger.Info.Printf("🌳 Tree %q evaluated: EMV=%.4f decision=%q", root.Name, rootEMV, root.Chosen)

	resp := models.DecisionResponse{
		Success: true,
		Results: &models.DecisionResults{
			RootEMV:         models.Money(rootEMV),
			OptimalDecision: root.Chosen,
			DecisionPath:    path,
			Tree:            annotate(root),
			RiskProfiles:    profiles,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error.Printf("🌳 Response encoding failed: %v", err)
	}
}

func writeDecisionFailure(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.DecisionResponse{Success: false, Error: msg})
}

func toRiskProfile(outcomes []decision.Outcome) models.RiskProfile {
	summary := decision.Summarize(outcomes)
	dto := models.RiskProfile{
		Outcomes:      make([]models.RiskOutcome, len(outcomes)),
		ExpectedValue: models.Money(summary.ExpectedValue),
		StdDev:        summary.StdDev,
	}
	for i, o := range outcomes {
		dto.Outcomes[i] = models.RiskOutcome{
			Name:        o.Name,
			Probability: o.Probability,
			Payoff:      models.Money(o.Payoff),
		}
	}
	return dto
}
