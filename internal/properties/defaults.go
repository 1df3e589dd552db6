package properties

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentbooks-dev/rentbooks/internal/model"
)

// Default returns the seed property list for a new workspace.
func Default() []model.Property {
	return []model.Property{
		{ID: "2111_9th", Name: "2111 9th Street", Value: decimal.NewFromInt(353000)},
		{ID: "2024_50th", Name: "2024 50th Street", Value: decimal.NewFromInt(274500)},
		{ID: "1112_36th", Name: "1112 36th St W", Value: decimal.NewFromInt(432000)},
		{ID: "5th_st_e", Name: "5th ST E", Value: decimal.NewFromInt(305000)},
		{ID: "37th_ave_e", Name: "37th Ave E", Value: decimal.NewFromInt(281500)},
		{ID: "61st_ave_ter", Name: "61st Ave Ter E", Value: decimal.NewFromInt(335000)},
		{ID: "59th_ave_e", Name: "59th Ave E", Value: decimal.NewFromInt(319000)},
		{ID: "2nd_st_w", Name: "2nd St W", Value: decimal.NewFromInt(350000)},
		{ID: "harbor_st", Name: "Harbor St", Value: decimal.NewFromInt(75000)},
		{ID: "las_palmas", Name: "Las Palmas", Value: decimal.NewFromInt(250000)},
		{ID: "primary_home", Name: "4156 Cascade Falls (Primary)", Value: decimal.NewFromInt(405000)},
		{ID: "summer_home", Name: "91 River Run (Summer)", Value: decimal.NewFromInt(380000)},
	}
}

// tenantProperty maps a tenant name appearing in a rent payment
// description to the property they occupy.
var tenantProperty = map[string]string{
	"jack sevilla":          "5th_st_e",
	"araceli ponce":         "5th_st_e",
	"lucy cepeda":           "2024_50th",
	"jesus cruz":            "2024_50th",
	"angel de la cruz":      "las_palmas",
	"pablo joaquin":         "37th_ave_e",
	"wendy cordova":         "2nd_st_w",
	"geron vile":            "2nd_st_w",
	"michelle ruth":         "1112_36th",
	"steven malloy":         "1112_36th",
	"claribel castillomero": "59th_ave_e",
	"belem amaro":           "59th_ave_e",
}

// TenantProperty returns the property ID for a description mentioning a
// known tenant, or "" when no tenant matches.
func TenantProperty(description string) string {
	desc := strings.ToLower(description)
	for tenant, propID := range tenantProperty {
		if strings.Contains(desc, tenant) {
			return propID
		}
	}
	return ""
}
