package auction_http_client_test

import (
	"errors"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuctionHTTPClient", func() {
	Describe("CreateAuction", func() {
		It("returns the new auction's guid", func() {
			house.CreateAuctionReturns("auction-1", nil)

			guid, err := client.CreateAuction(10, 3, 5)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(guid).Should(Equal("auction-1"))

			productID, required, maxRounds := house.CreateAuctionArgsForCall(0)
			Ω([]int{productID, required, maxRounds}).Should(Equal([]int{10, 3, 5}))
		})

		It("turns typed failures back into the same errors", func() {
			house.CreateAuctionReturns("", auctiontypes.ErrNoSuchProduct)

			_, err := client.CreateAuction(99, 3, 5)
			Ω(err).Should(Equal(auctiontypes.ErrNoSuchProduct))
		})

		It("reports untyped failures", func() {
			house.CreateAuctionReturns("", errors.New("boom"))

			_, err := client.CreateAuction(10, 3, 5)
			Ω(err).Should(MatchError(ContainSubstring("boom")))
		})
	})

	Describe("OpenAuction", func() {
		It("sends the creator along", func() {
			house.OpenAuctionReturns("auction-2", nil)

			guid, err := client.OpenAuction(7, 2500, true, 10, 3, 5)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(guid).Should(Equal("auction-2"))

			participantID, maxBid, active, productID, _, _ := house.OpenAuctionArgsForCall(0)
			Ω(participantID).Should(Equal(7))
			Ω(maxBid).Should(Equal(2500))
			Ω(active).Should(BeTrue())
			Ω(productID).Should(Equal(10))
		})

		It("surfaces InvalidMaxBid", func() {
			house.OpenAuctionReturns("", auctiontypes.ErrInvalidMaxBid)

			guid, err := client.OpenAuction(7, -10, false, 10, 3, 5)
			Ω(err).Should(Equal(auctiontypes.ErrInvalidMaxBid))
			Ω(guid).Should(BeEmpty())
		})
	})

	Describe("Subscribe", func() {
		It("subscribes", func() {
			Ω(client.Subscribe("auction-1", 4, 3000, false)).Should(Succeed())

			guid, participantID, maxBid, active := house.SubscribeArgsForCall(0)
			Ω(guid).Should(Equal("auction-1"))
			Ω(participantID).Should(Equal(4))
			Ω(maxBid).Should(Equal(3000))
			Ω(active).Should(BeFalse())
		})

		It("surfaces AuctionFull and AlreadyRegistered", func() {
			house.SubscribeReturnsOnCall(0, auctiontypes.ErrAuctionFull)
			house.SubscribeReturnsOnCall(1, auctiontypes.ErrAlreadyRegistered)

			Ω(client.Subscribe("auction-1", 4, 3000, false)).Should(MatchError(auctiontypes.ErrAuctionFull))
			Ω(client.Subscribe("auction-1", 4, 3000, false)).Should(MatchError(auctiontypes.ErrAlreadyRegistered))
		})

		It("surfaces InvalidMaxBid", func() {
			house.SubscribeReturns(auctiontypes.ErrInvalidMaxBid)
			Ω(client.Subscribe("auction-1", 4, -10, false)).Should(MatchError(auctiontypes.ErrInvalidMaxBid))
		})
	})

	Describe("TriggerStart", func() {
		It("starts the auction", func() {
			Ω(client.TriggerStart("auction-1")).Should(Succeed())
			Ω(house.TriggerStartArgsForCall(0)).Should(Equal("auction-1"))
		})

		It("surfaces NoSuchAuction", func() {
			house.TriggerStartReturns(auctiontypes.ErrNoSuchAuction)
			Ω(client.TriggerStart("nope")).Should(MatchError(auctiontypes.ErrNoSuchAuction))
		})
	})

	Describe("SubmitBid", func() {
		It("submits the bid", func() {
			Ω(client.SubmitBid("auction-1", 1800)).Should(Succeed())

			guid, amount := house.SubmitBidArgsForCall(0)
			Ω(guid).Should(Equal("auction-1"))
			Ω(amount).Should(Equal(1800))
		})
	})

	Describe("AuctionState", func() {
		It("fetches the state", func() {
			house.AuctionStateReturns(auctiontypes.AuctionState{
				Guid:   "auction-1",
				Status: auctiontypes.Bidding,
				Round:  2,
				MinBid: 1200,
				Roster: []auctiontypes.RosterEntry{{ParticipantID: 1, BrokerName: "b"}},
			}, nil)

			state, err := client.AuctionState("auction-1")
			Ω(err).ShouldNot(HaveOccurred())
			Ω(state.Status).Should(Equal(auctiontypes.Bidding))
			Ω(state.Round).Should(Equal(2))
			Ω(state.MinBid).Should(Equal(1200))
			Ω(state.Roster).Should(HaveLen(1))
		})
	})

	Describe("listings", func() {
		It("fetches auctions, participants, brokers and products", func() {
			house.AuctionsReturns([]auctiontypes.AuctionState{{Guid: "a"}})
			house.ParticipantsReturns([]auctiontypes.ParticipantInfo{{ID: 1, Name: "alice"}})
			house.BrokersReturns([]auctiontypes.BrokerInfo{{Name: "broker-1", Balance: decimal.RequireFromString("12.5")}})
			house.ProductsReturns([]auctiontypes.ProductInfo{{ID: 3, MinimumPrice: decimal.NewFromInt(100)}})

			Ω(client.Auctions()[0].Guid).Should(Equal("a"))
			Ω(client.Participants()[0].Name).Should(Equal("alice"))
			Ω(client.Brokers()[0].Balance.Equal(decimal.RequireFromString("12.5"))).Should(BeTrue())
			Ω(client.Products()[0].MinimumPrice.Equal(decimal.NewFromInt(100))).Should(BeTrue())
		})
	})

	Describe("AddProduct", func() {
		It("adds the product", func() {
			Ω(client.AddProduct(auctiontypes.ProductInfo{ID: 3, Name: "ring"})).Should(Succeed())
			Ω(house.AddProductArgsForCall(0).Name).Should(Equal("ring"))
		})
	})

	Context("when the server 500s", func() {
		It("errors", func() {
			_, err := clientForServerThat500s.CreateAuction(10, 3, 5)
			Ω(err).Should(MatchError(ContainSubstring("500")))
			Ω(clientForServerThat500s.Auctions()).Should(BeEmpty())
		})
	})

	Context("when a request errors (in the network sense)", func() {
		It("errors", func() {
			Ω(clientForServerThatErrors.TriggerStart("auction-1")).ShouldNot(Succeed())
			Ω(clientForServerThatErrors.Products()).Should(BeEmpty())
		})
	})
})
