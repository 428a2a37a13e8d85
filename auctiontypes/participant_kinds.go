package auctiontypes

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ParticipantKind string

const (
	Individual     ParticipantKind = "individual"
	Organizational ParticipantKind = "organizational"
)

type CompanyType string

const (
	SRL CompanyType = "SRL"
	SA  CompanyType = "SA"
)

// CommissionTier is the rate a broker keeps from a winning bid. Participants
// with more than Threshold auctions behind them pay the experienced rate.
type CommissionTier struct {
	Threshold       int
	ExperiencedRate decimal.Decimal
	NoviceRate      decimal.Decimal
}

var commissionTiers = map[ParticipantKind]CommissionTier{
	Organizational: {
		Threshold:       25,
		ExperiencedRate: decimal.RequireFromString("0.10"),
		NoviceRate:      decimal.RequireFromString("0.25"),
	},
	Individual: {
		Threshold:       5,
		ExperiencedRate: decimal.RequireFromString("0.15"),
		NoviceRate:      decimal.RequireFromString("0.20"),
	},
}

func (k ParticipantKind) Valid() bool {
	_, ok := commissionTiers[k]
	return ok
}

func (k ParticipantKind) CommissionTier() (CommissionTier, error) {
	tier, ok := commissionTiers[k]
	if !ok {
		return CommissionTier{}, fmt.Errorf("%w: %q", ErrUnknownParticipantKind, string(k))
	}
	return tier, nil
}

func (t CommissionTier) RateFor(auctionsInvolved int) decimal.Decimal {
	if auctionsInvolved > t.Threshold {
		return t.ExperiencedRate
	}
	return t.NoviceRate
}
