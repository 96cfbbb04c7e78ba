// Package gen produces CNF benchmark families with known structure. The
// generators are deterministic for a fixed seed so benchmark runs are
// reproducible.
package gen

import (
	"log"
	"math/rand/v2"

	"github.com/limaJavier/satsolver/pkg/sat"
)

// Random3SAT builds a uniform random 3-SAT instance with the given number of
// variables and clauses. Each clause draws three distinct variables and
// negates each with probability 1/2. The same seed always yields the same
// formula.
func Random3SAT(variables, clauses int, seed uint64) *sat.Formula {
	if variables < 3 {
		log.Panicf("cannot draw 3 distinct variables out of %v", variables)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	formula := &sat.Formula{
		Variables: variables,
		Clauses:   make([][]int, 0, clauses),
	}
	for i := 0; i < clauses; i++ {
		clause := make([]int, 0, 3)
		drawn := make(map[int]bool, 3)
		for len(clause) < 3 {
			v := rng.IntN(variables) + 1
			if drawn[v] {
				continue
			}
			drawn[v] = true
			if rng.Float64() < 0.5 {
				v = -v
			}
			clause = append(clause, v)
		}
		formula.Clauses = append(formula.Clauses, clause)
	}
	return formula
}

// Pigeonhole encodes placing pigeons into holes so that every pigeon gets a
// hole and no hole holds two pigeons. With more pigeons than holes the
// formula is unsatisfiable and resolution-based solvers need exponentially
// many conflicts, which makes the family a standard stress case.
func Pigeonhole(pigeons, holes int) *sat.Formula {
	if pigeons < 1 || holes < 1 {
		log.Panicf("degenerate pigeonhole instance: %v pigeons, %v holes", pigeons, holes)
	}

	// Variable (p-1)*holes + h states that pigeon p sits in hole h.
	occupies := func(pigeon, hole int) int {
		return (pigeon-1)*holes + hole
	}
	formula := &sat.Formula{Variables: pigeons * holes}
	for p := 1; p <= pigeons; p++ {
		clause := make([]int, 0, holes)
		for h := 1; h <= holes; h++ {
			clause = append(clause, occupies(p, h))
		}
		formula.Clauses = append(formula.Clauses, clause)
	}
	for h := 1; h <= holes; h++ {
		for p1 := 1; p1 <= pigeons; p1++ {
			for p2 := p1 + 1; p2 <= pigeons; p2++ {
				formula.Clauses = append(formula.Clauses, []int{-occupies(p1, h), -occupies(p2, h)})
			}
		}
	}
	return formula
}

// ParityChain builds a chain of parity constraints: helper variable y_i
// tracks the exclusive-or of inputs x_1..x_i and a final unit clause demands
// odd parity. Instances are satisfiable and exercise long implication
// chains. Variables 1..n are the inputs, n+1..2n the helpers.
func ParityChain(n int) *sat.Formula {
	if n < 1 {
		log.Panicf("parity chain needs at least one input variable, got %v", n)
	}

	formula := &sat.Formula{Variables: 2 * n}
	x := func(i int) int { return i }
	y := func(i int) int { return n + i }

	formula.Clauses = append(formula.Clauses,
		[]int{x(1), -y(1)},
		[]int{-x(1), y(1)},
	)
	for i := 2; i <= n; i++ {
		a, b, c := y(i-1), x(i), y(i)
		formula.Clauses = append(formula.Clauses,
			[]int{a, b, -c},
			[]int{a, -b, c},
			[]int{-a, b, c},
			[]int{-a, -b, -c},
		)
	}
	formula.Clauses = append(formula.Clauses, []int{y(n)})
	return formula
}
