package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/satsolver/pkg/dimacs"
	"github.com/limaJavier/satsolver/pkg/gen"
	"github.com/limaJavier/satsolver/pkg/sat"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	validModes = []sat.Mode{sat.ModeDPLL, sat.ModeCDCL}
	validKinds = []string{"3sat", "pigeonhole", "parity"}
)

var (
	solveMode         string
	solveConfig       string
	solveTimeout      float64
	solveMaxDecisions int64
	solveVerbose      bool
)

var (
	genVars    int
	genClauses int
	genSeed    uint64
	genPigeons int
	genHoles   int
	genOut     string
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:   "satsolver",
		Short: "Decide and generate boolean satisfiability problems",
	}
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newGenerateCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Decide satisfiability of a DIMACS CNF file",
		Long: `Solve reads a CNF formula in DIMACS format, decides it with the selected
engine and prints the verdict, the satisfying assignment when one exists and
the search statistics. The process exits with 10 when the formula is
satisfiable, 20 when it is unsatisfiable and 0 when a resource limit stopped
the search.`,
		Args: cobra.ExactArgs(1),
		Run:  runSolve,
	}
	cmd.Flags().StringVar(&solveMode, "mode", string(sat.ModeDPLL), `search engine to use: "dpll" or "cdcl", where "dpll" is the default`)
	cmd.Flags().StringVar(&solveConfig, "config", "", "path to a json file with solver options")
	cmd.Flags().Float64Var(&solveTimeout, "timeout", 0, "wall-clock limit in seconds, where 0 disables the limit")
	cmd.Flags().Int64Var(&solveMaxDecisions, "max-decisions", 0, "abort the search after this many decisions, where 0 disables the limit")
	cmd.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "log search progress")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) {
	mode := sat.Mode(strings.ToLower(solveMode))

	// Validate arguments
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", solveMode)
	}

	// Assemble options: the config file overrides the defaults, explicit
	// flags override the config file.
	options := sat.DefaultOptions()
	if solveConfig != "" {
		var err error
		options, err = sat.OptionsFromJson(solveConfig)
		if err != nil {
			log.Fatalf("cannot parse config file: %v", err)
		}
	}
	if solveConfig == "" || cmd.Flags().Changed("mode") {
		options.Mode = mode
	}
	if cmd.Flags().Changed("timeout") {
		options.TimeoutSeconds = solveTimeout
	}
	if cmd.Flags().Changed("max-decisions") {
		options.MaxDecisions = solveMaxDecisions
	}
	if solveVerbose {
		options.Verbose = true
		log.SetLevel(log.DebugLevel)
		options.Logger = log.StandardLogger()
	}

	// Extract input
	formula, err := dimacs.DecodeFile(args[0])
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Solve formula
	result, err := sat.Solve(formula, options)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	}

	printReport(formula, result)

	switch result.Outcome {
	case sat.Sat:
		// Verify assignment correctness
		if !formula.Verify(result.Assignment) {
			log.Errorf("reported assignment does not satisfy the formula")
			os.Exit(15)
		}
		os.Exit(10)
	case sat.Unsat:
		os.Exit(20)
	}
}

func printReport(formula *sat.Formula, result sat.Result) {
	banner := strings.Repeat("=", 60)
	fmt.Println(banner)
	fmt.Println(result.Outcome)
	fmt.Println(banner)
	if result.Outcome == sat.Sat {
		for v := 1; v <= formula.Variables; v++ {
			fmt.Printf("  x%d = %v\n", v, result.Assignment.Value(v))
		}
	}
	fmt.Println("Statistics:")
	fmt.Printf("  Decisions:    %v\n", result.Stats.Decisions)
	fmt.Printf("  Propagations: %v\n", result.Stats.Propagations)
	fmt.Printf("  Max depth:    %v\n", result.Stats.MaxDepth)
	fmt.Printf("  Conflicts:    %v\n", result.Stats.Conflicts)
	fmt.Printf("  Learned:      %v\n", result.Stats.Learned)
	fmt.Printf("  Restarts:     %v\n", result.Stats.Restarts)
	fmt.Printf("  Time:         %.3fs\n", result.Stats.Elapsed.Seconds())
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [kind]",
		Short: "Generate a benchmark formula in DIMACS format",
		Long: `Generate produces a CNF formula from one of the built-in families:
"3sat" (uniform random 3-SAT), "pigeonhole" (more pigeons than holes) and
"parity" (a chain of exclusive-or constraints). The formula is written in
DIMACS format to --out, or to the standard output when --out is empty.`,
		Args: cobra.ExactArgs(1),
		Run:  runGenerate,
	}
	cmd.Flags().IntVar(&genVars, "vars", 10, "number of variables for 3sat and number of inputs for parity")
	cmd.Flags().IntVar(&genClauses, "clauses", 0, "number of clauses for 3sat, where 0 selects 4.3 clauses per variable")
	cmd.Flags().Uint64Var(&genSeed, "seed", 1, "random seed for 3sat")
	cmd.Flags().IntVar(&genPigeons, "pigeons", 4, "number of pigeons for pigeonhole")
	cmd.Flags().IntVar(&genHoles, "holes", 3, "number of holes for pigeonhole")
	cmd.Flags().StringVar(&genOut, "out", "", "path to the file where the formula will be written; if empty, it'll be written into the Standard Output")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) {
	kind := strings.ToLower(args[0])

	// Validate arguments
	if !slices.Contains(validKinds, kind) {
		log.Fatalf("%v is not a valid formula kind", args[0])
	} else if genVars < 1 {
		log.Fatalf("vars must be positive: %v", genVars)
	} else if genClauses < 0 {
		log.Fatalf("clauses cannot be negative: %v", genClauses)
	}

	var formula *sat.Formula
	switch kind {
	case "3sat":
		clauses := genClauses
		if clauses == 0 {
			clauses = int(4.3 * float64(genVars))
		}
		formula = gen.Random3SAT(genVars, clauses, genSeed)
	case "pigeonhole":
		formula = gen.Pigeonhole(genPigeons, genHoles)
	case "parity":
		formula = gen.ParityChain(genVars)
	}

	// Verify outfile is empty, if so then write the formula to the Standard Output
	out := os.Stdout
	if genOut != "" {
		file, err := os.Create(genOut)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}
	if err := dimacs.Encode(out, formula); err != nil {
		log.Fatalf("an error occurred while writing the formula: %v", err)
	}

	if genOut != "" {
		fmt.Printf("Variables: %v\n", formula.Variables)
		fmt.Printf("Clauses: %v\n", len(formula.Clauses))
	}
}
