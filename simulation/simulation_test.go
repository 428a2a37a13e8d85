package simulation_test

import (
	"os"
	"time"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/auctiontypes/fakes"
	"code.cloudfoundry.org/auctionhouse/simulation"
	"code.cloudfoundry.org/auctionhouse/util"
	"code.cloudfoundry.org/clock"
	"github.com/tedsuo/ifrit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Population", func() {
	generate := func(seed int64) simulation.Population {
		return simulation.GeneratePopulation(simulation.DefaultPopulationSize, util.NewRandomizer(seed), util.NewGuidGenerator())
	}

	It("generates the requested inventory", func() {
		population := generate(42)

		Ω(population.Inventory.Brokers).Should(Equal([]string{"broker-1", "broker-2", "broker-3", "broker-4"}))
		Ω(population.Inventory.Participants).Should(HaveLen(40))
		Ω(population.Inventory.Products).Should(HaveLen(20))
		Ω(population.Budgets).Should(HaveLen(40))

		for _, p := range population.Inventory.Participants {
			Ω(population.Budgets[p.ID]).Should(BeNumerically(">=", 500))
			Ω(population.Budgets[p.ID]).Should(BeNumerically("<=", 5000))
			Ω(auctiontypes.ParticipantKind(p.Kind).Valid()).Should(BeTrue())
		}
	})

	It("is reproducible for a seed", func() {
		Ω(generate(7)).Should(Equal(generate(7)))
	})

	It("is a valid inventory", func() {
		population := generate(3)
		Ω(population.Inventory.Populate(&fakeRegistrar{}, logger)).Should(Succeed())
	})

	It("picks distinct participants", func() {
		population := generate(1)
		ids := population.Pick(10, util.NewRandomizer(1))
		Ω(ids).Should(HaveLen(10))

		seen := map[int]bool{}
		for _, id := range ids {
			Ω(seen[id]).Should(BeFalse())
			seen[id] = true
		}

		Ω(population.Pick(100, util.NewRandomizer(1))).Should(HaveLen(40))
	})
})

var _ = Describe("ActiveBidders", func() {
	var house *fakes.FakeAuctionHouse
	var randomizer *fakes.FakeRandomizer
	var events chan auctiontypes.Event
	var process ifrit.Process

	BeforeEach(func() {
		house = &fakes.FakeAuctionHouse{}
		randomizer = &fakes.FakeRandomizer{}
		events = make(chan auctiontypes.Event)
	})

	start := func(lowball int) *simulation.ActiveBidders {
		bidders := simulation.NewActiveBidders(house, events, map[int]int{1: 1500}, randomizer, lowball, logger)
		process = ifrit.Invoke(bidders)
		return bidders
	}

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive(BeNil()))
	})

	It("answers a prompt with a bid between the minimum and the budget", func() {
		randomizer.IntnReturns(200)
		start(0)

		events <- auctiontypes.Event{Type: auctiontypes.AwaitingBid, AuctionGuid: "a", ParticipantID: 1, MinBid: 1000}

		Eventually(house.SubmitBidCallCount).Should(Equal(1))
		guid, amount := house.SubmitBidArgsForCall(0)
		Ω(guid).Should(Equal("a"))
		Ω(amount).Should(Equal(1200))
		Ω(randomizer.IntnArgsForCall(0)).Should(Equal(501))
	})

	It("bids the minimum when the budget does not stretch further", func() {
		start(0)

		events <- auctiontypes.Event{Type: auctiontypes.AwaitingBid, AuctionGuid: "a", ParticipantID: 1, MinBid: 1500}

		Eventually(house.SubmitBidCallCount).Should(Equal(1))
		_, amount := house.SubmitBidArgsForCall(0)
		Ω(amount).Should(Equal(1500))
	})

	It("lowballs a first attempt and then retries at the minimum or above", func() {
		randomizer.IntnReturns(0)
		start(1)

		events <- auctiontypes.Event{Type: auctiontypes.AwaitingBid, AuctionGuid: "a", ParticipantID: 1, MinBid: 1000}
		Eventually(house.SubmitBidCallCount).Should(Equal(1))
		_, amount := house.SubmitBidArgsForCall(0)
		Ω(amount).Should(Equal(999))

		events <- auctiontypes.Event{Type: auctiontypes.BidRetry, AuctionGuid: "a", ParticipantID: 1, MinBid: 1000, Amount: 999}
		Eventually(house.SubmitBidCallCount).Should(Equal(2))
		_, amount = house.SubmitBidArgsForCall(1)
		Ω(amount).Should(Equal(1000))
	})

	It("tallies every event and ignores the ones that need no answer", func() {
		bidders := start(0)

		events <- auctiontypes.Event{Type: auctiontypes.RoundStarted}
		events <- auctiontypes.Event{Type: auctiontypes.BidReceived}
		events <- auctiontypes.Event{Type: auctiontypes.BidReceived}

		Eventually(bidders.Tally).Should(Equal(map[auctiontypes.EventType]int{
			auctiontypes.RoundStarted: 1,
			auctiontypes.BidReceived:  2,
		}))
		Ω(house.SubmitBidCallCount()).Should(BeZero())
	})
})

var _ = Describe("Simulator", func() {
	var population simulation.Population

	BeforeEach(func() {
		population = simulation.GeneratePopulation(simulation.PopulationSize{
			Brokers:      3,
			Participants: 12,
			Products:     8,
			MinBudget:    1000,
			MaxBudget:    4000,
			MinPrice:     100,
			MaxPrice:     3000,
		}, util.NewRandomizer(11), util.NewGuidGenerator())
	})

	It("runs every auction to an outcome", func() {
		simulator := simulation.New(logger, clock.NewClock(), util.NewRandomizer(11), population)

		var outcome simulation.Outcome
		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)

			var err error
			outcome, err = simulator.Run(simulation.Scenario{
				Auctions:             8,
				RequiredParticipants: 4,
				MaxRounds:            4,
				MaxConcurrent:        3,
				Overbook:             2,
				Lowball:              3,
			})
			Ω(err).ShouldNot(HaveOccurred())
		}()
		Eventually(done, 10*time.Second).Should(BeClosed())

		Ω(outcome.Failures).Should(BeEmpty())
		Ω(outcome.Results).Should(HaveLen(8))
		Ω(outcome.TurnedAway).Should(Equal(16))
		Ω(outcome.Tally[auctiontypes.AuctionEnded]).Should(Equal(8))
		Ω(outcome.Tally[auctiontypes.QuorumReached]).Should(Equal(8))
		Ω(outcome.Brokers).Should(HaveLen(3))

		for _, result := range outcome.Results {
			Ω(result.Rounds).Should(BeNumerically(">=", 1))
			Ω(result.Rounds).Should(BeNumerically("<=", 4))
			if result.Sold {
				Ω(result.WinningBid).Should(BeNumerically(">", 0))
			}
		}
	})

	It("rejects scenarios the population cannot carry", func() {
		simulator := simulation.New(logger, clock.NewClock(), util.NewRandomizer(1), population)

		_, err := simulator.Run(simulation.Scenario{Auctions: 9, RequiredParticipants: 2, MaxRounds: 1, MaxConcurrent: 1})
		Ω(err).Should(MatchError(simulation.ErrInvalidScenario))

		_, err = simulator.Run(simulation.Scenario{Auctions: 1, RequiredParticipants: 13, MaxRounds: 1, MaxConcurrent: 1})
		Ω(err).Should(MatchError(simulation.ErrInvalidScenario))

		_, err = simulator.Run(simulation.Scenario{Auctions: 1, RequiredParticipants: 2, MaxRounds: 1})
		Ω(err).Should(MatchError(simulation.ErrInvalidScenario))
	})
})
