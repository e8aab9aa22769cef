package main

import (
	"fmt"
	"log"
	"math"

	"github.com/jwaldner/forgecheck/internal/decision"

	"github.com/leekchan/accounting"
)

// Roll back the canonical invest/don't-invest example and check the known
// expected values: Invest EMV = 0.7*300000 + 0.3*50000 - 100000 = 125000.
func main() {
	fmt.Println("🎯 Decision Rollback Reference Check")
	fmt.Println("====================================")

	invest := decision.NewChance("Invest", 100000,
		decision.NewTerminal("Success", 300000).WithProbability(0.7),
		decision.NewTerminal("Failure", 50000).WithProbability(0.3),
	)
	dontInvest := decision.NewTerminal("DontInvest", 0)
	root := decision.NewDecision("Launch", 0, invest, dontInvest)

	rootEMV, err := decision.Rollback(root, decision.DefaultPolicy())
	if err != nil {
		log.Fatalf("❌ Rollback failed: %v", err)
	}

	ac := accounting.Accounting{Symbol: "$", Precision: 2}
	fmt.Printf("📊 Invest EMV:     %s\n", ac.FormatMoney(invest.EMV))
	fmt.Printf("📊 DontInvest EMV: %s\n", ac.FormatMoney(dontInvest.EMV))
	fmt.Printf("📊 Root EMV:       %s\n", ac.FormatMoney(rootEMV))
	fmt.Printf("📊 Decision:       %s\n", root.Chosen)

	path, err := decision.OptimalPath(root)
	if err != nil {
		log.Fatalf("❌ Path extraction failed: %v", err)
	}
	fmt.Printf("📊 Path:           %v\n", path)

	outcomes, err := decision.RiskProfile(invest)
	if err != nil {
		log.Fatalf("❌ Risk profile failed: %v", err)
	}
	fmt.Println("📊 Invest risk profile:")
	totalProb := 0.0
	for _, o := range outcomes {
		fmt.Printf("   %-10s p=%.2f payoff=%s\n", o.Name, o.Probability, ac.FormatMoney(o.Payoff))
		totalProb += o.Probability
	}

	if math.Abs(rootEMV-125000) > 1e-9 || root.Chosen != "Invest" {
		log.Fatalf("❌ Expected root EMV 125000 with decision Invest, got %v / %q", rootEMV, root.Chosen)
	}
	if math.Abs(totalProb-1) > 1e-9 {
		log.Fatalf("❌ Risk profile probabilities sum to %v, want 1", totalProb)
	}
	fmt.Println("✅ Rollback matches the reference values")
}
