// Package funds holds the static catalog of the three investment funds and
// the fixed risk-tier to fund mapping. The catalog is immutable for the
// process lifetime.
package funds

import "dia/internal/models"

// Fund is a fixed, non-tradable mock investment product with a static return
// assumption.
type Fund struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	RiskLevel     models.RiskProfile `json:"risk_level"`
	AnnualReturn  float64            `json:"annual_return_mock"`
	MinInvestment float64            `json:"min_investment"`
	Sector        string             `json:"sector"`
}

// catalog order is stable and is the order funds are listed in.
var catalog = []Fund{
	{
		ID:            "fund_001",
		Name:          "Energy Transition Fund",
		Description:   "A conservative fund focused on stable renewable energy infrastructure investments in the Caspian region.",
		RiskLevel:     models.RiskConservative,
		AnnualReturn:  6.5,
		MinInvestment: 10.0,
		Sector:        "Green Energy",
	},
	{
		ID:            "fund_002",
		Name:          "Balanced Fund",
		Description:   "A diversified portfolio combining green energy assets with emerging ICT opportunities.",
		RiskLevel:     models.RiskModerate,
		AnnualReturn:  9.2,
		MinInvestment: 10.0,
		Sector:        "Mixed (Green + ICT)",
	},
	{
		ID:            "fund_003",
		Name:          "ICT Innovation Fund",
		Description:   "An aggressive growth fund targeting cutting-edge technology startups and digital infrastructure.",
		RiskLevel:     models.RiskAggressive,
		AnnualReturn:  14.8,
		MinInvestment: 10.0,
		Sector:        "ICT & Technology",
	},
}

var byID = func() map[string]Fund {
	m := make(map[string]Fund, len(catalog))
	for _, f := range catalog {
		m[f.ID] = f
	}
	return m
}()

var riskMapping = map[models.RiskProfile]string{
	models.RiskConservative: "fund_001",
	models.RiskModerate:     "fund_002",
	models.RiskAggressive:   "fund_003",
}

// All returns the full catalog in stable order.
func All() []Fund {
	out := make([]Fund, len(catalog))
	copy(out, catalog)
	return out
}

// Count returns the number of funds in the catalog.
func Count() int { return len(catalog) }

// Get looks up a fund by id.
func Get(id string) (Fund, bool) {
	f, ok := byID[id]
	return f, ok
}

// ByRiskProfile returns the fund mapped to the given risk tier.
func ByRiskProfile(p models.RiskProfile) (Fund, bool) {
	id, ok := riskMapping[p]
	if !ok {
		return Fund{}, false
	}
	return Get(id)
}
