package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DachengChen/paiBI/intent"
)

func TestSelectPlanSQL(t *testing.T) {
	tests := []struct {
		name string
		plan SelectPlan
		want string
	}{
		{
			name: "bare",
			plan: SelectPlan{From: "customers"},
			want: "SELECT *\nFROM customers;",
		},
		{
			name: "ranked",
			plan: SelectPlan{
				From:   "employees",
				Select: []string{"first_name", "salary"},
				Sort:   SortBy("salary", intent.Descending),
				Limit:  5,
			},
			want: "SELECT first_name, salary\nFROM employees\nORDER BY salary DESC\nLIMIT 5;",
		},
		{
			name: "joined and grouped",
			plan: SelectPlan{
				From:    "sales s",
				Joins:   []PlanJoin{{Table: "customers c", On: "s.customer_id = c.customer_id"}},
				Select:  []string{"c.region", "SUM(s.total)"},
				Filters: []string{"s.total > 0", "c.region <> ''"},
				GroupBy: []string{"c.region"},
			},
			want: "SELECT c.region, SUM(s.total)\nFROM sales s\nJOIN customers c ON s.customer_id = c.customer_id\n" +
				"WHERE s.total > 0\n  AND c.region <> ''\nGROUP BY c.region;",
		},
		{
			name: "comment",
			plan: SelectPlan{From: "employees", Limit: 5, Comment: "Fallback"},
			want: "SELECT *\nFROM employees\nLIMIT 5; -- Fallback",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.SQL())
		})
	}
}

func TestSortByUnordered(t *testing.T) {
	assert.Nil(t, SortBy("salary", intent.Unordered))
	assert.Equal(t, intent.Ascending, SortBy("salary", intent.Ascending).Order)
}

func TestSelectPlanSummary(t *testing.T) {
	p := SelectPlan{From: "products", Filters: []string{"category = 'Juguetes'"}, Sort: SortBy("unit_price", intent.Ascending), Limit: 5}
	assert.Equal(t, "SELECT on products where category = 'Juguetes' order by unit_price asc (limit 5)", p.Summary())
}
