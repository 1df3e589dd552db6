package model

// AccountTag identifies which source feed produced a transaction.
type AccountTag string

const (
	AccountRental     AccountTag = "rental"     // rental income checking
	AccountRealEstate AccountTag = "realestate" // real estate checking
	AccountBusiness   AccountTag = "business"   // business income checking
	AccountExpenses   AccountTag = "expenses"   // business expense card
	AccountChase      AccountTag = "chase"      // general-purpose credit card
)

// AccountTags returns all known account tags in display order.
func AccountTags() []AccountTag {
	return []AccountTag{
		AccountRental,
		AccountRealEstate,
		AccountBusiness,
		AccountExpenses,
		AccountChase,
	}
}

// Valid reports whether the tag is one of the known feeds.
func (a AccountTag) Valid() bool {
	switch a {
	case AccountRental, AccountRealEstate, AccountBusiness, AccountExpenses, AccountChase:
		return true
	}
	return false
}
