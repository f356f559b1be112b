package dashboard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal/dashboard"
)

func row(category string, allocated, actual float64) dashboard.ComparisonRow {
	var percentage float64
	if allocated > 0 {
		percentage = actual / allocated * 100
	}
	return dashboard.ComparisonRow{
		Category:     category,
		Budget:       allocated,
		Actual:       actual,
		Percentage:   percentage,
		IsOverBudget: percentage > 100,
	}
}

var _ = Describe("Generate", func() {
	It("emits a single warning for an exceeded budget, not also a rising alert", func() {
		insights := dashboard.Generate([]dashboard.ComparisonRow{
			row("Food & Dining", 100, 120),
		}, 100, 120)

		Expect(insights).To(HaveLen(1))
		Expect(insights[0].Type).To(Equal(dashboard.SeverityWarning))
		Expect(insights[0].Title).To(Equal("Food & Dining Budget Exceeded"))
		Expect(insights[0].Description).To(ContainSubstring("120 out of your 100 food & dining budget"))
	})

	It("celebrates a fully unspent budget as 100% under", func() {
		insights := dashboard.Generate([]dashboard.ComparisonRow{
			row("Travel", 1000, 0),
		}, 1000, 0)

		titles := make([]string, 0, len(insights))
		for _, i := range insights {
			titles = append(titles, i.Title)
		}
		Expect(titles).To(ContainElement("Great Travel Savings"))

		Expect(insights[0].Type).To(Equal(dashboard.SeverityPositive))
		Expect(insights[0].Description).To(ContainSubstring("You're 100% under"))
		Expect(insights[0].Description).To(ContainSubstring("saved 1000 this month"))
	})

	It("raises an alert between 80 and 100 percent", func() {
		insights := dashboard.Generate([]dashboard.ComparisonRow{
			row("Shopping", 100, 90),
		}, 100, 90)

		Expect(insights[0].Type).To(Equal(dashboard.SeverityAlert))
		Expect(insights[0].Title).To(Equal("Shopping Costs Rising"))
		Expect(insights[0].Description).To(ContainSubstring("90% of your budget"))
	})

	It("stays silent for a category between 50 and 80 percent", func() {
		insights := dashboard.Generate([]dashboard.ComparisonRow{
			row("Shopping", 100, 65),
		}, 100, 90)

		for _, i := range insights {
			Expect(i.Title).ToNot(ContainSubstring("Shopping"))
		}
	})

	It("adds the overall insight when total spending is under 80 percent", func() {
		insights := dashboard.Generate([]dashboard.ComparisonRow{
			row("Shopping", 100, 65),
		}, 100, 65)

		Expect(insights).To(HaveLen(1))
		Expect(insights[0].Title).To(Equal("Overall Spending Under Control"))
		Expect(insights[0].Type).To(Equal(dashboard.SeverityTrend))
		Expect(insights[0].Description).To(ContainSubstring("65.0% of your total monthly budget"))
	})

	It("omits the overall insight when total spending reaches 80 percent", func() {
		insights := dashboard.Generate([]dashboard.ComparisonRow{
			row("Shopping", 100, 80),
		}, 100, 80)

		for _, i := range insights {
			Expect(i.Title).ToNot(Equal("Overall Spending Under Control"))
		}
	})

	It("falls back to exactly one starter insight when nothing applies", func() {
		insights := dashboard.Generate(nil, 0, 0)

		Expect(insights).To(HaveLen(1))
		Expect(insights[0].Title).To(Equal("Start Your Financial Journey"))
		Expect(insights[0].Type).To(Equal(dashboard.SeverityTrend))
	})

	It("truncates to four insights in generation order", func() {
		rows := []dashboard.ComparisonRow{
			row("Bills & Utilities", 100, 10),
			row("Education", 100, 10),
			row("Entertainment", 100, 10),
			row("Food & Dining", 100, 10),
			row("Healthcare", 100, 10),
		}

		insights := dashboard.Generate(rows, 500, 50)

		Expect(insights).To(HaveLen(4))
		Expect(insights[0].Title).To(Equal("Great Bills & Utilities Savings"))
		Expect(insights[3].Title).To(Equal("Great Food & Dining Savings"))
	})
})
