package auction_http_handlers_test

import (
	"net/http"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/communication/http/routes"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalogue handlers", func() {
	It("lists participants", func() {
		participants := []auctiontypes.ParticipantInfo{
			{ID: 1, Name: "alice", Kind: auctiontypes.Individual, Auctions: []string{}},
		}
		house.ParticipantsReturns(participants)

		status, body := Request(routes.Participants, nil, nil)
		Ω(status).Should(Equal(http.StatusOK))
		Ω(body).Should(MatchJSON(JSONFor(participants)))
	})

	It("lists brokers with their balances", func() {
		brokers := []auctiontypes.BrokerInfo{
			{Name: "broker-1", Balance: decimal.RequireFromString("150.15"), Clients: []int{1}},
		}
		house.BrokersReturns(brokers)

		status, body := Request(routes.Brokers, nil, nil)
		Ω(status).Should(Equal(http.StatusOK))
		Ω(body).Should(MatchJSON(`[{"name":"broker-1","balance":"150.15","clients":[1]}]`))
	})

	It("lists products", func() {
		products := []auctiontypes.ProductInfo{
			{ID: 3, Name: "ring", Category: auctiontypes.Jewelry, MinimumPrice: decimal.NewFromInt(400)},
		}
		house.ProductsReturns(products)

		status, body := Request(routes.Products, nil, nil)
		Ω(status).Should(Equal(http.StatusOK))
		Ω(body).Should(MatchJSON(JSONFor(products)))
	})

	Describe("AddProduct", func() {
		It("adds the product", func() {
			product := auctiontypes.ProductInfo{ID: 3, Name: "ring", Year: 1920, MinimumPrice: decimal.NewFromInt(400)}

			status, _ := Request(routes.AddProduct, nil, JSONReaderFor(product))
			Ω(status).Should(Equal(http.StatusCreated))

			added := house.AddProductArgsForCall(0)
			Ω(added.ID).Should(Equal(3))
			Ω(added.Year).Should(Equal(1920))
			Ω(added.MinimumPrice.Equal(decimal.NewFromInt(400))).Should(BeTrue())
		})

		It("conflicts on a duplicate product", func() {
			house.AddProductReturns(auctiontypes.ErrDuplicateProduct)

			status, _ := Request(routes.AddProduct, nil, JSONReaderFor(auctiontypes.ProductInfo{ID: 3}))
			Ω(status).Should(Equal(http.StatusConflict))
		})
	})
})
