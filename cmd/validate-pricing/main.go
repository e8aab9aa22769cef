package main

import (
	"fmt"
	"log"
	"math"

	"github.com/jwaldner/forgecheck/internal/pricing"
)

// Cross-check the lattice against the closed form: as the step count grows
// the CRR price must converge on the Black-Scholes reference.
func main() {
	fmt.Println("🎯 Lattice vs Closed-Form Convergence Check")
	fmt.Println("===========================================")

	spec := pricing.OptionSpec{
		S:     100.0,
		K:     100.0,
		R:     0.05,
		Sigma: 0.3,
		T:     1.0,
		Kind:  pricing.Call,
		Style: pricing.European,
	}

	fmt.Printf("📊 Input Parameters:\n")
	fmt.Printf("   Spot (S): $%.2f\n", spec.S)
	fmt.Printf("   Strike (K): $%.2f\n", spec.K)
	fmt.Printf("   Risk-free Rate (r): %.4f\n", spec.R)
	fmt.Printf("   Volatility (σ): %.4f\n", spec.Sigma)
	fmt.Printf("   Horizon (T): %.2f years\n", spec.T)
	fmt.Println()

	reference, err := pricing.BlackScholes(spec)
	if err != nil {
		log.Fatalf("❌ Closed-form pricing failed: %v", err)
	}
	fmt.Printf("📐 Black-Scholes reference: %.6f\n", reference.Price)
	fmt.Println()

	tolerance := 0.01
	ok := true
	for _, n := range []int{10, 50, 100, 250, 500} {
		spec.Steps = n
		lattice, err := pricing.Binomial(spec)
		if err != nil {
			log.Fatalf("❌ Lattice pricing failed at n=%d: %v", n, err)
		}
		diff := math.Abs(lattice.Price - reference.Price)
		fmt.Printf("   n=%4d  price=%.6f  diff=%.6f  (u=%.6f d=%.6f p=%.6f)\n",
			n, lattice.Price, diff, lattice.U, lattice.D, lattice.P)
		if n == 500 && diff > tolerance {
			ok = false
		}
	}

	fmt.Println()
	if ok {
		fmt.Printf("✅ Lattice agrees with closed form within %.2f at n=500\n", tolerance)
	} else {
		log.Fatalf("❌ Lattice diverges from closed form beyond %.2f at n=500", tolerance)
	}
}
