// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package sqlgen renders the idempotent seed script.

A [Script] collects statements into three phases and always renders them in
phase order, whatever order they were added in:

 1. Cleanup deletes previously seeded rows, children first.
 2. Upsert inserts every row, each statement carrying its conflict policy.
 3. Patch applies updates that need every row in place (e.g. self references).

The script contains no transaction statements. It is meant for executors that
run a flat statement sequence and may reject BEGIN/COMMIT. Rendering performs
no I/O and cannot fail.
*/
package sqlgen

import (
	"io"
	"strings"
)

// Phase is a script section.
type Phase int

const (
	PhaseCleanup Phase = iota
	PhaseUpsert
	PhasePatch

	phaseCount
)

var phaseTitles = [phaseCount]string{"cleanup", "upsert", "patch"}

// String returns the phase name used in section comments.
func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseTitles[p]
}

// Script is an ordered, phase-partitioned statement list.
// The zero value is an empty script.
type Script struct {
	header []string
	phases [phaseCount][]string
}

// Comment appends a header comment line. Line breaks are flattened so a
// comment can never terminate early.
func (s *Script) Comment(line string) {
	s.header = append(s.header, strings.NewReplacer("\r", " ", "\n", " ").Replace(line))
}

// Add appends statements to phase.
func (s *Script) Add(phase Phase, statements ...Statement) {
	for _, statement := range statements {
		s.phases[phase] = append(s.phases[phase], statement.SQL())
	}
}

// Header returns the header comment lines, without the "-- " prefix.
func (s *Script) Header() []string {
	return s.header
}

// Phase returns the rendered statements of one phase.
func (s *Script) Phase(phase Phase) []string {
	return s.phases[phase]
}

// Statements returns every statement in execution order, without semicolons.
func (s *Script) Statements() []string {
	var all []string
	for _, statements := range s.phases {
		all = append(all, statements...)
	}
	return all
}

// Len is the number of statements in the script.
func (s *Script) Len() int {
	total := 0
	for _, statements := range s.phases {
		total += len(statements)
	}
	return total
}

// WriteTo renders the script to writer in one call.
func (s *Script) WriteTo(writer io.Writer) (int64, error) {
	written, err := io.WriteString(writer, s.String())
	return int64(written), err
}

// String renders the whole script: header comments, then each non-empty phase
// under a section comment, one statement per line.
func (s *Script) String() string {
	var builder strings.Builder

	for _, line := range s.header {
		builder.WriteString("-- ")
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	for phase, statements := range s.phases {
		if len(statements) == 0 {
			continue
		}
		builder.WriteString("\n-- ")
		builder.WriteString(Phase(phase).String())
		builder.WriteString("\n")
		for _, statement := range statements {
			builder.WriteString(statement)
			builder.WriteString(";\n")
		}
	}

	return builder.String()
}
