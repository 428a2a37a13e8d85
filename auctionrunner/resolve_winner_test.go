package auctionrunner_test

import (
	. "code.cloudfoundry.org/auctionhouse/auctionrunner"
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/broker"
	"code.cloudfoundry.org/auctionhouse/participant"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveWinner", func() {
	var b *broker.Broker

	withWins := func(id, wins int) *participant.Participant {
		return participant.New(id, "bidder", auctiontypes.Individual, participant.WithHistory(wins, 0))
	}

	BeforeEach(func() {
		b = broker.New("broker", logger)
	})

	It("picks the highest bid", func() {
		winner, err := ResolveWinner([]Bid{
			{Amount: 900, Bidder: withWins(1, 5), Broker: b},
			{Amount: 1200, Bidder: withWins(2, 0), Broker: b},
			{Amount: 1100, Bidder: withWins(3, 9), Broker: b},
		})
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winner.Bidder.ID()).Should(Equal(2))
		Ω(winner.Amount).Should(Equal(1200))
	})

	It("breaks ties on the number of wins", func() {
		winner, err := ResolveWinner([]Bid{
			{Amount: 1000, Bidder: withWins(1, 0), Broker: b},
			{Amount: 1000, Bidder: withWins(2, 2), Broker: b},
			{Amount: 900, Bidder: withWins(3, 5), Broker: b},
		})
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winner.Bidder.ID()).Should(Equal(2))
	})

	It("prefers the higher bid over an equal win count", func() {
		winner, err := ResolveWinner([]Bid{
			{Amount: 100, Bidder: withWins(1, 1), Broker: b},
			{Amount: 200, Bidder: withWins(2, 1), Broker: b},
		})
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winner.Bidder.ID()).Should(Equal(2))
		Ω(winner.Amount).Should(Equal(200))
	})

	It("settles a tie on wins whichever order the bids arrive in", func() {
		a := Bid{Amount: 300, Bidder: withWins(1, 2), Broker: b}
		other := Bid{Amount: 300, Bidder: withWins(2, 3), Broker: b}

		winner, err := ResolveWinner([]Bid{a, other})
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winner.Bidder.ID()).Should(Equal(2))

		winner, err = ResolveWinner([]Bid{other, a})
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winner.Bidder.ID()).Should(Equal(2))
		Ω(winner.Amount).Should(Equal(300))
	})

	It("falls back to the first bidder when wins are equal too", func() {
		winner, err := ResolveWinner([]Bid{
			{Amount: 1000, Bidder: withWins(1, 1), Broker: b},
			{Amount: 1000, Bidder: withWins(2, 1), Broker: b},
		})
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winner.Bidder.ID()).Should(Equal(1))
	})

	It("returns a lone bid", func() {
		winner, err := ResolveWinner([]Bid{{Amount: 500, Bidder: withWins(4, 0), Broker: b}})
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winner.Bidder.ID()).Should(Equal(4))
	})

	It("refuses to pick from nothing", func() {
		_, err := ResolveWinner([]Bid{})
		Ω(err).Should(MatchError(auctiontypes.ErrEmptyRoster))
	})
})
