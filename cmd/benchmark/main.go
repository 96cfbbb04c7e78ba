package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"

	"github.com/limaJavier/satsolver/pkg/gen"
	"github.com/limaJavier/satsolver/pkg/sat"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	resultsFile    = "benchmark_results.csv"
	clauseRatio    = 4.3
	seedsPerSize   = 3
	timeoutSeconds = 10
)

type Instance struct {
	Name    string
	Family  string
	Formula *sat.Formula
}

type BenchmarkResult struct {
	Instance Instance
	Mode     sat.Mode
	Outcome  sat.Outcome
	Stats    sat.Stats
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	instances := getInstances()
	modes := getModes()
	results := make([]BenchmarkResult, len(instances)*len(modes))

	group := errgroup.Group{}
	group.SetLimit(runtime.NumCPU())

	for i, instance := range instances {
		for j, mode := range modes {
			index := i*len(modes) + j
			group.Go(func() error {
				log.Infof("benchmarking \"%v\" with mode \"%v\"", instance.Name, mode)

				options := sat.DefaultOptions()
				options.Mode = mode
				options.TimeoutSeconds = timeoutSeconds
				result, err := sat.Solve(instance.Formula, options)
				if err != nil {
					return fmt.Errorf("cannot solve \"%v\" with mode \"%v\": %w", instance.Name, mode, err)
				}

				// Verify assignment correctness
				if result.Outcome == sat.Sat && !instance.Formula.Verify(result.Assignment) {
					return fmt.Errorf("assignment for \"%v\" with mode \"%v\" does not satisfy the formula", instance.Name, mode)
				}

				results[index] = BenchmarkResult{
					Instance: instance,
					Mode:     mode,
					Outcome:  result.Outcome,
					Stats:    result.Stats,
				}
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		log.Fatalf("benchmark aborted: %v", err)
	}

	toCsv(results)
}

func getInstances() []Instance {
	instances := make([]Instance, 0)

	for _, variables := range []int{20, 40, 60, 80} {
		clauses := int(clauseRatio * float64(variables))
		for _, seed := range lo.RangeFrom(uint64(1), seedsPerSize) {
			instances = append(instances, Instance{
				Name:    fmt.Sprintf("3sat_v%v_s%v", variables, seed),
				Family:  "3sat",
				Formula: gen.Random3SAT(variables, clauses, seed),
			})
		}
	}

	for _, pigeons := range []int{4, 5, 6} {
		instances = append(instances, Instance{
			Name:    fmt.Sprintf("pigeonhole_%v_%v", pigeons, pigeons-1),
			Family:  "pigeonhole",
			Formula: gen.Pigeonhole(pigeons, pigeons-1),
		})
	}

	for _, inputs := range []int{8, 16, 24} {
		instances = append(instances, Instance{
			Name:    fmt.Sprintf("parity_%v", inputs),
			Family:  "parity",
			Formula: gen.ParityChain(inputs),
		})
	}

	return instances
}

func getModes() []sat.Mode {
	return []sat.Mode{sat.ModeDPLL, sat.ModeCDCL}
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Instance", "Family", "Variables", "Clauses", "Mode", "Outcome", "Decisions", "Propagations", "Conflicts", "Learned", "Restarts", "Max Depth", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	records := lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			result.Instance.Name,
			result.Instance.Family,
			fmt.Sprintf("%d", result.Instance.Formula.Variables),
			fmt.Sprintf("%d", len(result.Instance.Formula.Clauses)),
			string(result.Mode),
			result.Outcome.String(),
			fmt.Sprintf("%d", result.Stats.Decisions),
			fmt.Sprintf("%d", result.Stats.Propagations),
			fmt.Sprintf("%d", result.Stats.Conflicts),
			fmt.Sprintf("%d", result.Stats.Learned),
			fmt.Sprintf("%d", result.Stats.Restarts),
			fmt.Sprintf("%d", result.Stats.MaxDepth),
			fmt.Sprintf("%d", result.Stats.Elapsed.Milliseconds()),
		}
	})
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
