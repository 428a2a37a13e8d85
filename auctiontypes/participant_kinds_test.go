package auctiontypes_test

import (
	"errors"
	"fmt"

	. "code.cloudfoundry.org/auctionhouse/auctiontypes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("ParticipantKind", func() {
	DescribeTable("commission rates",
		func(kind ParticipantKind, auctionsInvolved int, expectedRate string) {
			tier, err := kind.CommissionTier()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(tier.RateFor(auctionsInvolved).Equal(decimal.RequireFromString(expectedRate))).Should(BeTrue())
		},
		Entry("seasoned organization", Organizational, 26, "0.10"),
		Entry("organization at the threshold", Organizational, 25, "0.25"),
		Entry("seasoned individual", Individual, 6, "0.15"),
		Entry("individual at the threshold", Individual, 5, "0.20"),
		Entry("brand new individual", Individual, 0, "0.20"),
	)

	It("knows its valid kinds", func() {
		Ω(Individual.Valid()).Should(BeTrue())
		Ω(Organizational.Valid()).Should(BeTrue())
		Ω(ParticipantKind("cooperative").Valid()).Should(BeFalse())
	})

	It("errors for an unknown kind", func() {
		_, err := ParticipantKind("cooperative").CommissionTier()
		Ω(err).Should(MatchError(ErrUnknownParticipantKind))
		Ω(err.Error()).Should(ContainSubstring("cooperative"))
	})
})

var _ = Describe("InvariantViolation", func() {
	It("wraps the underlying defect", func() {
		err := fmt.Errorf("finalizing: %w", NewInvariantViolation("auction-1", ErrEmptyRoster))

		Ω(IsInvariantViolation(err)).Should(BeTrue())
		Ω(errors.Is(err, ErrEmptyRoster)).Should(BeTrue())
		Ω(err.Error()).Should(ContainSubstring("auction-1"))
	})

	It("is not confused with operator errors", func() {
		Ω(IsInvariantViolation(ErrAuctionFull)).Should(BeFalse())
		Ω(IsInvariantViolation(nil)).Should(BeFalse())
	})
})
