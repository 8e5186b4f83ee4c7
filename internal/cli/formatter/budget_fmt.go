package formatter

import (
	"fmt"
	"strings"

	"github.com/nadiaferrer/tessera/internal/budget"
)

// FormatBudgetReport renders a reconciliation summary: revenue projections,
// then per-category expense lines with budgeted/actual/variance columns.
func FormatBudgetReport(projectName string, s budget.Summary) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render("Budget report — " + projectName))

	b.WriteString("\n\n" + StyleHeader.Render("Revenue"))
	for _, cat := range s.Revenue {
		if len(cat.Items) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n  %-28s %14s", categoryLabel(cat.Name), FormatMoney(cat.Budgeted)))
	}
	ticketNote := StyleDim.Render("(actuals not tracked)")
	b.WriteString(fmt.Sprintf("\n  %-28s %14s  %s", "Tickets", FormatMoney(s.Tickets.Projected), ticketNote))
	b.WriteString(fmt.Sprintf("\n  %-28s %14s", StyleBold.Render("Projected revenue"), FormatMoney(s.ProjectedRevenue)))

	b.WriteString("\n\n" + StyleHeader.Render("Expenses"))
	b.WriteString("\n  " + StyleDim.Render(fmt.Sprintf("%-28s %12s %12s %12s", "", "BUDGETED", "ACTUAL", "VARIANCE")))
	for _, cat := range s.Expenses {
		if len(cat.Items) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n  %-28s %12s %12s %12s",
			categoryLabel(cat.Name),
			FormatMoney(cat.Budgeted),
			FormatMoney(cat.Actual),
			VarianceStyle(cat.Budgeted-cat.Actual).Render(FormatMoney(cat.Budgeted-cat.Actual)),
		))
		for _, item := range cat.Items {
			label := item.Description
			if label == "" {
				label = item.Source
			}
			b.WriteString(fmt.Sprintf("\n    %-26s %12s %12s %12s",
				StyleDim.Render(truncate(label, 26)),
				FormatMoney(item.Budgeted),
				FormatMoney(item.Actual),
				VarianceStyle(item.Variance).Render(FormatMoney(item.Variance)),
			))
			if item.Contributed > 0 {
				b.WriteString(StyleDim.Render(fmt.Sprintf("  +%s in-kind", FormatMoney(item.Contributed))))
			}
		}
	}

	b.WriteString(fmt.Sprintf("\n\n  %-28s %12s %12s %12s",
		StyleBold.Render("Total expenses"),
		FormatMoney(s.BudgetedExpenses),
		FormatMoney(s.ActualExpenses),
		VarianceStyle(s.BudgetedExpenses-s.ActualExpenses).Render(FormatMoney(s.BudgetedExpenses-s.ActualExpenses)),
	))
	if s.ContributedValue > 0 {
		b.WriteString(fmt.Sprintf("\n  %-28s %12s", "Contributed value", FormatMoney(s.ContributedValue)))
	}
	if s.UnattributedActual > 0 {
		b.WriteString("\n  " + StyleYellow.Render(fmt.Sprintf("%s actual spend not linked to a budget line", FormatMoney(s.UnattributedActual))))
	}

	return b.String()
}

func categoryLabel(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
