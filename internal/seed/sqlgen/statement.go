// Copyright (c) 2026 Oshidora. All rights reserved.

package sqlgen

import (
	"strings"

	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/seedid"
)

// Statement is one SQL statement, rendered without the trailing semicolon.
type Statement interface {
	SQL() string
}

// # Conditions

// Condition is a rendered boolean SQL expression.
type Condition string

// Eq matches column = value.
func Eq(column string, value any) Condition {
	return Condition(column + " = " + Literal(value))
}

// Like matches column against a LIKE pattern escaped with [seedid.Escape].
func Like(column, pattern string) Condition {
	return Condition(column + " LIKE " + Quote(pattern) + " ESCAPE " + Quote(seedid.Escape))
}

// Or joins conditions with OR. A single condition is returned unchanged.
func Or(conditions ...Condition) Condition {
	return join(" OR ", conditions)
}

// And joins conditions with AND.
func And(conditions ...Condition) Condition {
	return join(" AND ", conditions)
}

func join(operator string, conditions []Condition) Condition {
	if len(conditions) == 1 {
		return conditions[0]
	}
	parts := make([]string, len(conditions))
	for i, condition := range conditions {
		parts[i] = "(" + string(condition) + ")"
	}
	return Condition(strings.Join(parts, operator))
}

// # Insert

// Conflict is the ON CONFLICT clause of an [Insert].
// An empty Update list renders DO NOTHING.
type Conflict struct {
	Target []string
	Update []string
}

// DoNothing keeps the existing row when target collides.
func DoNothing(target ...string) *Conflict {
	return &Conflict{Target: target}
}

// DoUpdate overwrites columns from the proposed row when target collides.
func DoUpdate(target []string, columns ...string) *Conflict {
	return &Conflict{Target: target, Update: columns}
}

// Insert adds one row. Values pair up with Columns and render via [Literal].
type Insert struct {
	Table    string
	Columns  []string
	Values   []any
	Conflict *Conflict
}

// SQL renders INSERT INTO t (..) VALUES (..) [ON CONFLICT ..].
func (i Insert) SQL() string {
	var builder strings.Builder

	builder.WriteString("INSERT INTO ")
	builder.WriteString(i.Table)
	builder.WriteString(" (")
	builder.WriteString(strings.Join(i.Columns, ", "))
	builder.WriteString(") VALUES (")
	for n, value := range i.Values {
		if n > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(Literal(value))
	}
	builder.WriteString(")")

	if i.Conflict != nil {
		builder.WriteString(" ON CONFLICT (")
		builder.WriteString(strings.Join(i.Conflict.Target, ", "))
		builder.WriteString(")")

		if len(i.Conflict.Update) == 0 {
			builder.WriteString(" DO NOTHING")
		} else {
			builder.WriteString(" DO UPDATE SET ")
			for n, column := range i.Conflict.Update {
				if n > 0 {
					builder.WriteString(", ")
				}
				builder.WriteString(column + " = excluded." + column)
			}
		}
	}

	return builder.String()
}

// # Delete & Update

// Delete removes the rows matching Where.
type Delete struct {
	Table string
	Where Condition
}

// SQL renders DELETE FROM t WHERE cond.
func (d Delete) SQL() string {
	return "DELETE FROM " + d.Table + " WHERE " + string(d.Where)
}

// Assignment is one column = value pair of an [Update].
type Assignment struct {
	Column string
	Value  any
}

// Set builds an [Assignment].
func Set(column string, value any) Assignment {
	return Assignment{Column: column, Value: value}
}

// Update changes the rows matching Where.
type Update struct {
	Table string
	Set   []Assignment
	Where Condition
}

// SQL renders UPDATE t SET c = v, .. WHERE cond.
func (u Update) SQL() string {
	assignments := make([]string, len(u.Set))
	for i, assignment := range u.Set {
		assignments[i] = assignment.Column + " = " + Literal(assignment.Value)
	}
	return "UPDATE " + u.Table + " SET " + strings.Join(assignments, ", ") + " WHERE " + string(u.Where)
}
