package participant_test

import (
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/auctiontypes/fakes"
	"code.cloudfoundry.org/auctionhouse/broker"
	. "code.cloudfoundry.org/auctionhouse/participant"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Participant", func() {
	var (
		p      *Participant
		b      *broker.Broker
		random *fakes.FakeRandomizer
	)

	BeforeEach(func() {
		p = New(7, "Ana Popescu", auctiontypes.Individual, WithProfile(Profile{
			Address:  "Str. Lunga 4",
			Birthday: "1980-03-12",
		}))
		b = broker.New("broker-1", logger)
		random = &fakes.FakeRandomizer{}
	})

	Describe("Involve", func() {
		It("records the assignment and counts the auction", func() {
			Ω(p.Involve("auction-a", b, true)).Should(Succeed())

			assignment, ok := p.Assignment("auction-a")
			Ω(ok).Should(BeTrue())
			Ω(assignment.Broker).Should(Equal(b))
			Ω(assignment.Active).Should(BeTrue())
			Ω(p.AuctionsInvolved()).Should(Equal(1))
		})

		It("rejects a second registration for the same auction", func() {
			Ω(p.Involve("auction-a", b, false)).Should(Succeed())
			Ω(p.Involve("auction-a", b, true)).Should(MatchError(auctiontypes.ErrAlreadyRegistered))

			assignment, _ := p.Assignment("auction-a")
			Ω(assignment.Active).Should(BeFalse())
			Ω(p.AuctionsInvolved()).Should(Equal(1))
		})

		It("allows registration in several auctions", func() {
			Ω(p.Involve("auction-a", b, false)).Should(Succeed())
			Ω(p.Involve("auction-b", b, false)).Should(Succeed())
			Ω(p.Info().Auctions).Should(Equal([]string{"auction-a", "auction-b"}))
		})
	})

	Describe("Detach", func() {
		It("drops the assignment but keeps the history", func() {
			Ω(p.Involve("auction-a", b, false)).Should(Succeed())
			p.Detach("auction-a")

			Ω(p.IsRegistered("auction-a")).Should(BeFalse())
			Ω(p.AuctionsInvolved()).Should(Equal(1))
		})
	})

	Describe("PlaceBid", func() {
		BeforeEach(func() {
			p.SetMaxBid(2000)
		})

		It("divides the headroom by a random number between 1 and 10", func() {
			random.IntnReturns(3)
			Ω(p.PlaceBid(1000, random)).Should(Equal(1250))
			Ω(random.IntnArgsForCall(0)).Should(Equal(10))
		})

		It("bids the maximum when the divisor is 1", func() {
			random.IntnReturns(0)
			Ω(p.PlaceBid(1000, random)).Should(Equal(2000))
		})

		It("never bids below the minimum", func() {
			random.IntnReturns(9)
			Ω(p.PlaceBid(1990, random)).Should(Equal(1991))
		})
	})

	Describe("counters", func() {
		It("starts from the given history", func() {
			p = New(8, "Acme", auctiontypes.Organizational, WithHistory(2, 30))
			Ω(p.Wins()).Should(Equal(2))
			Ω(p.AuctionsInvolved()).Should(Equal(30))

			p.WinAuction()
			Ω(p.Wins()).Should(Equal(3))
		})
	})

	Describe("Info", func() {
		It("describes an organization", func() {
			p = New(9, "Acme", auctiontypes.Organizational, WithProfile(Profile{
				CompanyType:   auctiontypes.SRL,
				SocialCapital: decimal.NewFromInt(200),
			}))
			p.SetMaxBid(3000)

			info := p.Info()
			Ω(info.ID).Should(Equal(9))
			Ω(info.Kind).Should(Equal(auctiontypes.Organizational))
			Ω(info.CompanyType).Should(Equal(auctiontypes.SRL))
			Ω(info.SocialCapital.Equal(decimal.NewFromInt(200))).Should(BeTrue())
			Ω(info.MaxBid).Should(Equal(3000))
			Ω(info.Auctions).Should(BeEmpty())
		})
	})
})
