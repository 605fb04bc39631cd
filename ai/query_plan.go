// query_plan.go defines the structured plan behind the SQL shown with
// each answer.
//
// Answers are computed in memory; the SQL is what an equivalent query
// against the seeded PostgreSQL schema would look like. Building it from
// a plan keeps every answer's SQL in one consistent shape.
package ai

import (
	"fmt"
	"strings"

	"github.com/DachengChen/paiBI/intent"
)

// SelectPlan describes a read-only query.
type SelectPlan struct {
	// From is the driving table, optionally with an alias ("sales s").
	From string

	// Joins lists joined tables with their conditions.
	Joins []PlanJoin

	// Select lists the output expressions; empty means "*".
	Select []string

	// Filters lists WHERE conditions, ANDed together.
	Filters []string

	// GroupBy lists grouping expressions.
	GroupBy []string

	// Sort specifies the ordering.
	Sort *PlanSort

	// Limit caps the row count; zero means no LIMIT clause.
	Limit int

	// Comment is appended after the statement terminator.
	Comment string
}

// PlanJoin is one JOIN clause.
type PlanJoin struct {
	Table string
	On    string
}

// PlanSort defines the sort order.
type PlanSort struct {
	Column string
	Order  intent.Order
}

// SortBy returns a sort for ranked orders and nil otherwise.
func SortBy(column string, o intent.Order) *PlanSort {
	if !o.Ranked() {
		return nil
	}
	return &PlanSort{Column: column, Order: o}
}

// SQL renders the plan as PostgreSQL.
func (p SelectPlan) SQL() string {
	selectCols := "*"
	if len(p.Select) > 0 {
		selectCols = strings.Join(p.Select, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s\nFROM %s", selectCols, p.From)

	for _, j := range p.Joins {
		fmt.Fprintf(&sb, "\nJOIN %s ON %s", j.Table, j.On)
	}

	// WHERE
	if len(p.Filters) > 0 {
		sb.WriteString("\nWHERE " + strings.Join(p.Filters, "\n  AND "))
	}

	// GROUP BY
	if len(p.GroupBy) > 0 {
		sb.WriteString("\nGROUP BY " + strings.Join(p.GroupBy, ", "))
	}

	// ORDER BY
	if p.Sort != nil && p.Sort.Column != "" {
		order := "ASC"
		if p.Sort.Order == intent.Descending {
			order = "DESC"
		}
		fmt.Fprintf(&sb, "\nORDER BY %s %s", p.Sort.Column, order)
	}

	if p.Limit > 0 {
		fmt.Fprintf(&sb, "\nLIMIT %d", p.Limit)
	}
	sb.WriteString(";")

	if p.Comment != "" {
		sb.WriteString(" -- " + p.Comment)
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the plan.
func (p SelectPlan) Summary() string {
	tables := []string{p.From}
	for _, j := range p.Joins {
		tables = append(tables, j.Table)
	}
	summary := "SELECT on " + strings.Join(tables, ", ")

	if len(p.Filters) > 0 {
		summary += " where " + strings.Join(p.Filters, " and ")
	}
	if len(p.GroupBy) > 0 {
		summary += " group by " + strings.Join(p.GroupBy, ", ")
	}
	if p.Sort != nil {
		summary += fmt.Sprintf(" order by %s %s", p.Sort.Column, p.Sort.Order)
	}
	if p.Limit > 0 {
		summary += fmt.Sprintf(" (limit %d)", p.Limit)
	}
	return summary
}
