package gasat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format (spec §6) into a
// Formula.
//
// For convenience, a few non-standard variations are accepted, following
// the parser this one is adapted from:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing, in which case NVars is inferred
//     from the highest variable referenced.
//   - A line containing a single '%' ends the clause data; anything after
//     it (some corpora append a DIMACS solution trailer) is ignored.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	var header struct {
		vars    int
		clauses int
		seen    bool
	}
	var clauses []Clause
	var clause Clause
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, malformedFormulaf("problem line appears after clauses")
			}
			if header.seen {
				return nil, malformedFormulaf("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, malformedFormulaf("malformed problem line %q", line)
			}
			if fields[1] != "cnf" {
				return nil, malformedFormulaf("only cnf supported; got %q", fields[1])
			}
			var err error
			header.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, malformedFormulaf("malformed variable count in problem line: %s", err)
			}
			header.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, malformedFormulaf("malformed clause count in problem line: %s", err)
			}
			if header.vars < 0 {
				return nil, malformedFormulaf("invalid variable count %d", header.vars)
			}
			if header.clauses < 0 {
				return nil, malformedFormulaf("invalid clause count %d", header.clauses)
			}
			header.seen = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, malformedFormulaf("invalid literal %q: %s", field, err)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		return nil, malformedFormulaf("final clause is missing its terminating 0")
	}

	nVars := header.vars
	if !header.seen {
		for _, c := range clauses {
			for _, lit := range c {
				v := abs(lit)
				if v > nVars {
					nVars = v
				}
			}
		}
	} else {
		for _, c := range clauses {
			for _, lit := range c {
				v := abs(lit)
				if v > header.vars {
					return nil, malformedFormulaf("formula contains variable %d, but the problem line declares only %d variables", v, header.vars)
				}
			}
		}
		if len(clauses) != header.clauses {
			return nil, malformedFormulaf("problem line declares %d clauses, but %d were read", header.clauses, len(clauses))
		}
	}

	f := &Formula{Clauses: clauses, NVars: nVars}
	return f, nil
}

// WriteDIMACS writes f back out in DIMACS CNF format, with a problem line
// computed from f's own NVars and clause count. It is mainly useful for
// round-tripping test fixtures.
func WriteDIMACS(w io.Writer, f *Formula) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.NVars, f.NClauses()); err != nil {
		return err
	}
	for _, c := range f.Clauses {
		parts := make([]string, 0, len(c)+1)
		for _, lit := range c {
			parts = append(parts, strconv.Itoa(lit))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
