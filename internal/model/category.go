package model

import "strings"

// Category classifies a transaction's economic nature. The set is closed;
// categories carrying the "capital_" prefix are capital expenditures.
type Category string

// CapitalPrefix marks capital-expenditure categories by name.
const CapitalPrefix = "capital_"

const (
	CategoryCapitalHVAC       Category = "capital_hvac"
	CategoryCapitalRoofing    Category = "capital_roofing"
	CategoryCapitalGenerator  Category = "capital_generator"
	CategoryCapitalAppliances Category = "capital_appliances"
	CategoryCapitalFlooring   Category = "capital_flooring"
	CategoryCapitalWindows    Category = "capital_windows"
	CategoryCapitalElectrical Category = "capital_electrical"
	CategoryCapitalPlumbing   Category = "capital_plumbing"
	CategoryRentalIncome      Category = "rental_income"
	CategoryBusinessIncome    Category = "business_income"
	CategoryUtilities         Category = "utilities"
	CategoryInsurance         Category = "insurance"
	CategoryMaintenance       Category = "property_maintenance"
	CategoryPropertyExpenses  Category = "property_expenses"
	CategoryBusinessExpenses  Category = "business_expenses"
	CategoryPersonalExpenses  Category = "personal_expenses"
	CategoryUncategorized     Category = "uncategorized"
)

// IsCapital reports whether the category is a capital expenditure.
// Transaction.IsCapital must always equal this for its category.
func (c Category) IsCapital() bool {
	return strings.HasPrefix(string(c), CapitalPrefix)
}
