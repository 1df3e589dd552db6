// Package categorize maps transaction descriptions to categories using a
// fixed, ordered rule table. Matching is first-match-wins over the table
// order, so the order below is part of the contract: a description that
// matches two categories always lands in the earlier one.
package categorize

import (
	"regexp"
	"strings"

	"github.com/rentbooks-dev/rentbooks/internal/model"
)

// Rule pairs a category with its compiled description patterns, tested in
// declared order.
type Rule struct {
	Category model.Category
	Patterns []*regexp.Regexp
}

var rules = []Rule{
	rule(model.CategoryCapitalHVAC, `air.*condition`, `hvac`, `heating.*system`, `furnace`, `heat.*pump`, `ac.*unit`, `central.*air`),
	rule(model.CategoryCapitalRoofing, `roof`, `shingle`, `gutter`, `roof.*repair`, `roof.*replacement`),
	rule(model.CategoryCapitalGenerator, `generator`, `backup.*power`, `standby.*generator`),
	rule(model.CategoryCapitalAppliances, `refrigerator`, `washer`, `dryer`, `dishwasher`, `stove`, `oven`, `microwave`),
	rule(model.CategoryCapitalFlooring, `flooring`, `carpet`, `hardwood`, `tile`, `laminate`, `vinyl`),
	rule(model.CategoryCapitalWindows, `window`, `door`, `sliding.*door`, `french.*door`),
	rule(model.CategoryCapitalElectrical, `electrical.*panel`, `rewiring`, `electrical.*upgrade`, `circuit.*breaker`),
	rule(model.CategoryCapitalPlumbing, `water.*heater`, `plumbing.*upgrade`, `pipe.*replacement`, `sewer.*line`),
	rule(model.CategoryRentalIncome, `rent`, `tenant`, `property.*income`, `rental.*payment`),
	rule(model.CategoryBusinessIncome, `invoice`, `payment.*received`, `client.*payment`, `consulting`, `service.*fee`),
	rule(model.CategoryUtilities, `electric`, `gas.*company`, `water.*bill`, `internet`, `phone`, `cable`, `vyve`, `frontier`, `netflix`, `streaming`),
	rule(model.CategoryInsurance, `insurance`, `premium`, `policy.*payment`, `coverage`),
	rule(model.CategoryMaintenance, `maintenance`, `repair`, `landscaping`, `cleaning`, `pest.*control`, `small.*repair`, `handyman`, `lawn.*care`),
	rule(model.CategoryPropertyExpenses, `property.*tax`, `hoa`, `property.*management`),
	rule(model.CategoryBusinessExpenses, `office.*supplies`, `software`, `subscription`, `travel`, `meeting`, `equipment`, `computer`, `professional.*services`),
	rule(model.CategoryPersonalExpenses, `grocery`, `restaurant`, `gas.*station`, `retail`, `shopping`, `amazon`, `target`, `walmart`, `costco`),
}

func rule(c model.Category, patterns ...string) Rule {
	r := Rule{Category: c, Patterns: make([]*regexp.Regexp, len(patterns))}
	for i, p := range patterns {
		r.Patterns[i] = regexp.MustCompile(p)
	}
	return r
}

// Categorize returns the first category whose any pattern matches the
// lowercased description, or CategoryUncategorized.
func Categorize(description string) model.Category {
	desc := strings.ToLower(description)
	for _, r := range rules {
		for _, p := range r.Patterns {
			if p.MatchString(desc) {
				return r.Category
			}
		}
	}
	return model.CategoryUncategorized
}

// Categories returns every category name in table order, with the
// uncategorized catch-all last. Callers use this for manual-override
// choice lists.
func Categories() []model.Category {
	out := make([]model.Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.Category)
	}
	return append(out, model.CategoryUncategorized)
}
