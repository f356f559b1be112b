package dashboard

import "sort"

// Compare joins budget allocations with an expense breakdown. The result is
// budget-driven: one row per budgeted category (zero actual when nothing
// was spent), and spending without a budget contributes no row. Rows are
// ordered by category name so output is stable across calls.
func Compare(budgets, breakdown map[string]float64) []ComparisonRow {
	categories := make([]string, 0, len(budgets))
	for category := range budgets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	rows := make([]ComparisonRow, 0, len(categories))
	for _, category := range categories {
		allocated := budgets[category]
		actual := breakdown[category]

		var percentage float64
		if allocated > 0 {
			percentage = actual / allocated * 100
		}

		rows = append(rows, ComparisonRow{
			Category:     category,
			Budget:       allocated,
			Actual:       actual,
			Percentage:   percentage,
			IsOverBudget: percentage > 100,
		})
	}
	return rows
}
