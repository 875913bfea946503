package services

import (
	"fmt"

	apperrors "dia/internal/errors"
	"dia/internal/funds"
)

// fundService serves the static catalog and risk-profile recommendations.
type fundService struct {
	users UserServicer
}

// NewFundService creates a new FundServicer.
func NewFundService(users UserServicer) FundServicer {
	return &fundService{users: users}
}

// ListFunds returns the full catalog in stable order.
func (s *fundService) ListFunds() []funds.Fund {
	return funds.All()
}

// Recommend is a pure function of the user's stored risk profile: it returns
// the fund fixed for that tier with a templated reason string. Idempotent, no
// side effects.
func (s *fundService) Recommend(userID string) (*Recommendation, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	fund, ok := funds.ByRiskProfile(user.RiskProfile)
	if !ok {
		// Profiles are validated at registration; an unmapped tier here means
		// corrupted stored data.
		return nil, apperrors.WithMessage(apperrors.ErrInternalServer,
			fmt.Sprintf("no fund mapped for risk profile %q", user.RiskProfile))
	}

	return &Recommendation{
		RiskProfile: user.RiskProfile,
		Fund:        fund,
		Reason:      fmt.Sprintf("Based on your %s risk profile, we recommend the %s.", user.RiskProfile, fund.Name),
	}, nil
}
