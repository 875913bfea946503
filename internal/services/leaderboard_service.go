package services

import (
	"errors"
	"sort"

	apperrors "dia/internal/errors"
	"dia/internal/store"
)

const (
	leaderboardSize    = 10
	leaderboardMinRows = 5
)

// placeholderEntries pad short leaderboards in demo mode. They are not real
// users and every padded row is flagged IsPlaceholder.
var placeholderEntries = []LeaderboardEntry{
	{Username: "green_investor_az", TotalInvested: 2450.80, IsPlaceholder: true},
	{Username: "baku_saver", TotalInvested: 1890.50, IsPlaceholder: true},
	{Username: "caspian_trader", TotalInvested: 1567.25, IsPlaceholder: true},
}

// leaderboardService ranks portfolios by total value.
type leaderboardService struct {
	st          store.Store
	demoPadding bool
}

// NewLeaderboardService creates a new LeaderboardServicer. With demoPadding
// enabled, result sets shorter than five rows are padded with flagged
// placeholder entries.
func NewLeaderboardService(st store.Store, demoPadding bool) LeaderboardServicer {
	return &leaderboardService{st: st, demoPadding: demoPadding}
}

// TopInvestors returns up to ten portfolios ranked by total value descending,
// joined with the owning usernames. Order among equal totals is not defined.
func (s *leaderboardService) TopInvestors() ([]LeaderboardEntry, error) {
	portfolios, err := s.st.ListPortfolios()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sort.SliceStable(portfolios, func(i, j int) bool {
		return portfolios[i].TotalValue > portfolios[j].TotalValue
	})
	if len(portfolios) > leaderboardSize {
		portfolios = portfolios[:leaderboardSize]
	}

	entries := make([]LeaderboardEntry, 0, leaderboardSize)
	for _, p := range portfolios {
		user, err := s.st.GetUserByID(p.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		entries = append(entries, LeaderboardEntry{
			Rank:          len(entries) + 1,
			Username:      user.Username,
			TotalInvested: round2(p.TotalValue),
		})
	}

	if s.demoPadding {
		for i := 0; len(entries) < leaderboardMinRows && i < len(placeholderEntries); i++ {
			placeholder := placeholderEntries[i]
			placeholder.Rank = len(entries) + 1
			entries = append(entries, placeholder)
		}
	}

	return entries, nil
}
