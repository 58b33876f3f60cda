// Package parsers loads DIMACS CNF formulas into a SAT solver. The solver
// core itself never touches files: everything it consumes goes through the
// small SATSolver interface below.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"satmicro/sat"
)

// SATSolver is the part of the solver the DIMACS front-end relies on.
type SATSolver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

// LoadDIMACSFile parses the DIMACS CNF file and loads its formula in the
// given SAT solver. The file may be gzip compressed.
func LoadDIMACSFile(filename string, gzipped bool, solver SATSolver) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer file.Close()

	var r io.Reader = file
	if gzipped {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("error reading file %q: %w", filename, err)
		}
		defer gz.Close()
		r = gz
	}

	return LoadDIMACS(r, solver)
}

// LoadDIMACS reads a DIMACS CNF formula and loads it in the given SAT
// solver. Variables are declared from the problem line's variable count;
// a clause referring to a variable beyond that count surfaces the solver's
// construction error.
func LoadDIMACS(r io.Reader, solver SATSolver) error {
	b := &builder{solver: solver}
	return dimacs.ReadBuilder(r, b)
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver SATSolver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		clause[i] = sat.LiteralFromDIMACS(l)
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}
