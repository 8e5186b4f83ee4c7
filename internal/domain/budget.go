package domain

// BudgetItem is one budgeted line, revenue or expense, with a projected
// amount. ActualAmount is an optional manually tracked figure kept alongside
// the computed actuals; the reconciliation engine never writes it.
type BudgetItem struct {
	ID           string   `json:"id"`
	Source       string   `json:"source,omitempty"`
	Description  string   `json:"description,omitempty"`
	Amount       float64  `json:"amount"`
	Status       string   `json:"status,omitempty"`
	ActualAmount *float64 `json:"actual_amount,omitempty"`
}

// TicketPlan is the single structured ticket-revenue aggregate. Unlike the
// itemized categories it has no per-item lines and no actual tracking.
type TicketPlan struct {
	NumVenues       int     `json:"num_venues,omitempty"`
	VenueCapacity   int     `json:"venue_capacity,omitempty"`
	PercentCapacity float64 `json:"percent_capacity,omitempty"`
	AvgTicketPrice  float64 `json:"avg_ticket_price,omitempty"`
}

// Revenue projects ticket income. Absent factors are zero, so an
// unconfigured plan yields 0 rather than an error.
func (t TicketPlan) Revenue() float64 {
	return float64(t.NumVenues) * (t.PercentCapacity / 100) * float64(t.VenueCapacity) * t.AvgTicketPrice
}

// Budget is embedded in a project: four itemized revenue categories plus the
// ticket aggregate, and six itemized expense categories. Item ids are unique
// across the entire budget because tasks and expenses reference them without
// naming the category.
type Budget struct {
	Grants        []BudgetItem `json:"grants"`
	Tickets       TicketPlan   `json:"tickets"`
	Sales         []BudgetItem `json:"sales"`
	Fundraising   []BudgetItem `json:"fundraising"`
	Contributions []BudgetItem `json:"contributions"`

	ProfessionalFees        []BudgetItem `json:"professional_fees"`
	Travel                  []BudgetItem `json:"travel"`
	Production              []BudgetItem `json:"production"`
	Administration          []BudgetItem `json:"administration"`
	Research                []BudgetItem `json:"research"`
	ProfessionalDevelopment []BudgetItem `json:"professional_development"`
}

// BudgetCategory pairs a category name with its items. Slices returned by
// RevenueCategories/ExpenseCategories alias the budget's backing arrays;
// callers that mutate must go through WalkItems or Clone first.
type BudgetCategory struct {
	Name  string
	Items []BudgetItem
}

// Itemized revenue category names, in display order.
const (
	CategoryGrants        = "grants"
	CategorySales         = "sales"
	CategoryFundraising   = "fundraising"
	CategoryContributions = "contributions"

	CategoryProfessionalFees        = "professional_fees"
	CategoryTravel                  = "travel"
	CategoryProduction              = "production"
	CategoryAdministration          = "administration"
	CategoryResearch                = "research"
	CategoryProfessionalDevelopment = "professional_development"
)

// RevenueCategories returns the itemized revenue categories in stable order.
// The ticket aggregate is not included; it has no items.
func (b *Budget) RevenueCategories() []BudgetCategory {
	return []BudgetCategory{
		{CategoryGrants, b.Grants},
		{CategorySales, b.Sales},
		{CategoryFundraising, b.Fundraising},
		{CategoryContributions, b.Contributions},
	}
}

// ExpenseCategories returns the itemized expense categories in stable order.
func (b *Budget) ExpenseCategories() []BudgetCategory {
	return []BudgetCategory{
		{CategoryProfessionalFees, b.ProfessionalFees},
		{CategoryTravel, b.Travel},
		{CategoryProduction, b.Production},
		{CategoryAdministration, b.Administration},
		{CategoryResearch, b.Research},
		{CategoryProfessionalDevelopment, b.ProfessionalDevelopment},
	}
}

// WalkItems visits every budget item across all categories with pointer
// access, revenue categories first. The merge engine uses it to re-mint ids.
func (b *Budget) WalkItems(fn func(category string, item *BudgetItem)) {
	walk := func(name string, items []BudgetItem) {
		for i := range items {
			fn(name, &items[i])
		}
	}
	walk(CategoryGrants, b.Grants)
	walk(CategorySales, b.Sales)
	walk(CategoryFundraising, b.Fundraising)
	walk(CategoryContributions, b.Contributions)
	walk(CategoryProfessionalFees, b.ProfessionalFees)
	walk(CategoryTravel, b.Travel)
	walk(CategoryProduction, b.Production)
	walk(CategoryAdministration, b.Administration)
	walk(CategoryResearch, b.Research)
	walk(CategoryProfessionalDevelopment, b.ProfessionalDevelopment)
}

// HasItem reports whether an item with the given id exists anywhere in the
// budget.
func (b *Budget) HasItem(id string) bool {
	found := false
	b.WalkItems(func(_ string, item *BudgetItem) {
		if item.ID == id {
			found = true
		}
	})
	return found
}

// Clone returns a deep copy of the budget.
func (b Budget) Clone() Budget {
	out := b
	out.Grants = append([]BudgetItem(nil), b.Grants...)
	out.Sales = append([]BudgetItem(nil), b.Sales...)
	out.Fundraising = append([]BudgetItem(nil), b.Fundraising...)
	out.Contributions = append([]BudgetItem(nil), b.Contributions...)
	out.ProfessionalFees = append([]BudgetItem(nil), b.ProfessionalFees...)
	out.Travel = append([]BudgetItem(nil), b.Travel...)
	out.Production = append([]BudgetItem(nil), b.Production...)
	out.Administration = append([]BudgetItem(nil), b.Administration...)
	out.Research = append([]BudgetItem(nil), b.Research...)
	out.ProfessionalDevelopment = append([]BudgetItem(nil), b.ProfessionalDevelopment...)
	cloneActuals := func(items []BudgetItem) {
		for i := range items {
			if items[i].ActualAmount != nil {
				v := *items[i].ActualAmount
				items[i].ActualAmount = &v
			}
		}
	}
	cloneActuals(out.Grants)
	cloneActuals(out.Sales)
	cloneActuals(out.Fundraising)
	cloneActuals(out.Contributions)
	cloneActuals(out.ProfessionalFees)
	cloneActuals(out.Travel)
	cloneActuals(out.Production)
	cloneActuals(out.Administration)
	cloneActuals(out.Research)
	cloneActuals(out.ProfessionalDevelopment)
	return out
}
