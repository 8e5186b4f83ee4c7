// Package integrity states, as data, which fields are foreign keys, where
// they point, and what happens to them when their target is deleted. The
// cascade engine and the checker both read this table; adding an entity type
// means adding rows here, not new call-site logic.
package integrity

// Policy says how a reference is treated when its target disappears.
type Policy string

const (
	// PolicyCascade deletes the referencing record with its target.
	PolicyCascade Policy = "cascade"
	// PolicyNullOut blanks the reference; the record survives.
	PolicyNullOut Policy = "null_out"
	// PolicyPreserve keeps the reference as a historical pointer. The
	// checker still surfaces it so a dangling value is never silent.
	PolicyPreserve Policy = "preserve"
)

// Collection names, shared with the persist layer's slot names.
const (
	EntityProject       = "projects"
	EntityMember        = "members"
	EntityTask          = "tasks"
	EntityActivity      = "activities"
	EntityDirectExpense = "direct_expenses"
	EntityReport        = "reports"
)

// Rule describes one foreign-key edge.
type Rule struct {
	Entity string // owning collection
	Field  string // JSON field name of the reference
	Target string // referenced collection ("budget_items" = owning project's budget)
	Policy Policy
}

// TargetBudgetItems marks references into the owning project's own budget.
// Cross-project budget references are invalid by construction.
const TargetBudgetItems = "budget_items"

// Rules is the full reference table for the workspace.
var Rules = []Rule{
	{EntityProject, "collaborator_details.member_id", EntityMember, PolicyNullOut},

	{EntityTask, "project_id", EntityProject, PolicyCascade},
	{EntityTask, "assigned_member_id", EntityMember, PolicyNullOut},
	{EntityTask, "budget_item_id", TargetBudgetItems, PolicyNullOut},

	{EntityActivity, "task_id", EntityTask, PolicyCascade},
	{EntityActivity, "member_id", EntityMember, PolicyPreserve},

	{EntityDirectExpense, "project_id", EntityProject, PolicyCascade},
	{EntityDirectExpense, "budget_item_id", TargetBudgetItems, PolicyNullOut},

	{EntityReport, "project_id", EntityProject, PolicyCascade},
}
