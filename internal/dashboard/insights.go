package dashboard

import (
	"fmt"
	"strconv"
	"strings"
)

const maxInsights = 4

// Per-category thresholds, checked in order; the first match wins so a
// category contributes at most one insight.
const (
	exceededThreshold = 100
	savingsThreshold  = 50
	risingThreshold   = 80
)

// overallThreshold gates the single whole-budget insight.
const overallThreshold = 80

// Generate applies the fixed threshold rules to the comparison rows and the
// month totals, producing at most four insights. An otherwise empty result
// yields exactly one starter insight.
func Generate(rows []ComparisonRow, totalBudget, totalExpenses float64) []Insight {
	insights := make([]Insight, 0, maxInsights)

	for _, row := range rows {
		switch {
		case row.Percentage > exceededThreshold:
			insights = append(insights, Insight{
				Type:  SeverityWarning,
				Title: row.Category + " Budget Exceeded",
				Description: fmt.Sprintf("You've spent %s out of your %s %s budget this month.",
					formatAmount(row.Actual), formatAmount(row.Budget), strings.ToLower(row.Category)),
			})
		case row.Percentage < savingsThreshold:
			insights = append(insights, Insight{
				Type:  SeverityPositive,
				Title: "Great " + row.Category + " Savings",
				Description: fmt.Sprintf("You're %.0f%% under your %s budget. You've saved %s this month!",
					100-row.Percentage, strings.ToLower(row.Category), formatAmount(row.Budget-row.Actual)),
			})
		case row.Percentage > risingThreshold:
			insights = append(insights, Insight{
				Type:  SeverityAlert,
				Title: row.Category + " Costs Rising",
				Description: fmt.Sprintf("%s expenses are %.0f%% of your budget. Consider monitoring this category closely.",
					row.Category, row.Percentage),
			})
		}
	}

	if totalBudget > 0 {
		overallPercentage := totalExpenses / totalBudget * 100
		if overallPercentage < overallThreshold {
			insights = append(insights, Insight{
				Type:  SeverityTrend,
				Title: "Overall Spending Under Control",
				Description: fmt.Sprintf("You've used %.1f%% of your total monthly budget. Great financial discipline!",
					overallPercentage),
			})
		}
	}

	if len(insights) == 0 {
		insights = append(insights, Insight{
			Type:        SeverityTrend,
			Title:       "Start Your Financial Journey",
			Description: "Add more transactions and set budgets to get personalized insights about your spending patterns.",
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
