package funds

import (
	"testing"

	"dia/internal/models"
)

func TestCatalog(t *testing.T) {
	if Count() != 3 {
		t.Fatalf("expected 3 funds, got %d", Count())
	}

	tests := []struct {
		id        string
		name      string
		risk      models.RiskProfile
		annual    float64
		minInvest float64
	}{
		{"fund_001", "Energy Transition Fund", models.RiskConservative, 6.5, 10.0},
		{"fund_002", "Balanced Fund", models.RiskModerate, 9.2, 10.0},
		{"fund_003", "ICT Innovation Fund", models.RiskAggressive, 14.8, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			f, ok := Get(tt.id)
			if !ok {
				t.Fatalf("fund %s not found", tt.id)
			}
			if f.Name != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, f.Name)
			}
			if f.RiskLevel != tt.risk {
				t.Errorf("expected risk %s, got %s", tt.risk, f.RiskLevel)
			}
			if f.AnnualReturn != tt.annual {
				t.Errorf("expected annual return %v, got %v", tt.annual, f.AnnualReturn)
			}
			if f.MinInvestment != tt.minInvest {
				t.Errorf("expected min investment %v, got %v", tt.minInvest, f.MinInvestment)
			}
			if f.Description == "" || f.Sector == "" {
				t.Error("description and sector must be populated")
			}
		})
	}

	if _, ok := Get("fund_999"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestByRiskProfile(t *testing.T) {
	tests := []struct {
		profile models.RiskProfile
		wantID  string
	}{
		{models.RiskConservative, "fund_001"},
		{models.RiskModerate, "fund_002"},
		{models.RiskAggressive, "fund_003"},
	}

	for _, tt := range tests {
		f, ok := ByRiskProfile(tt.profile)
		if !ok {
			t.Fatalf("no fund for profile %s", tt.profile)
		}
		if f.ID != tt.wantID {
			t.Errorf("profile %s: expected %s, got %s", tt.profile, tt.wantID, f.ID)
		}
	}

	if _, ok := ByRiskProfile(models.RiskProfile("reckless")); ok {
		t.Error("unmapped profile should not resolve")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"

	f, _ := Get("fund_001")
	if f.Name == "mutated" {
		t.Error("All must not expose the backing catalog")
	}
}
