package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/limaJavier/satsolver/pkg/sat"
)

// Decode reads a DIMACS CNF formula: comment lines start with c, a single
// problem line "p cnf <variables> <clauses>" precedes the clauses, and each
// clause is a run of non-zero literals terminated by 0, possibly spanning
// lines. The declared clause count is not enforced, matching the relaxed
// behavior of common solvers; literal ranges are.
func Decode(r io.Reader) (*sat.Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var formula *sat.Formula
	var current []int
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}
		if strings.HasPrefix(text, "%") {
			break // SATLIB end marker
		}
		if strings.HasPrefix(text, "p") {
			if formula != nil {
				return nil, fmt.Errorf("line %d: duplicate problem line", line)
			}
			fields := strings.Fields(text)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("line %d: malformed problem line %q", line, text)
			}
			variables, err := strconv.Atoi(fields[2])
			if err != nil || variables < 0 {
				return nil, fmt.Errorf("line %d: invalid variable count %q", line, fields[2])
			}
			declared, err := strconv.Atoi(fields[3])
			if err != nil || declared < 0 {
				return nil, fmt.Errorf("line %d: invalid clause count %q", line, fields[3])
			}
			formula = &sat.Formula{
				Variables: variables,
				Clauses:   make([][]int, 0, declared),
			}
			continue
		}
		if formula == nil {
			return nil, fmt.Errorf("line %d: clause before problem line", line)
		}
		for _, field := range strings.Fields(text) {
			l, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid literal %q", line, field)
			}
			if l == 0 {
				formula.Clauses = append(formula.Clauses, current)
				current = nil
				continue
			}
			if l > formula.Variables || l < -formula.Variables {
				return nil, fmt.Errorf("line %d: literal %d exceeds %d variables", line, l, formula.Variables)
			}
			current = append(current, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if formula == nil {
		return nil, fmt.Errorf("missing problem line")
	}
	if len(current) > 0 {
		formula.Clauses = append(formula.Clauses, current)
	}
	return formula, nil
}

// DecodeFile reads a DIMACS CNF file from disk.
func DecodeFile(path string) (*sat.Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return f, nil
}

// Encode writes the formula in DIMACS CNF format, one clause per line.
func Encode(w io.Writer, f *sat.Formula) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "p cnf %d %d\n", f.Variables, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(buf, "%d ", literal)
		}
		buf.WriteString("0\n")
	}
	return buf.Flush()
}
