package auction_http_handlers

import (
	"net/http"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/lager/v3"
)

type participants struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *participants) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.house.Participants())
}

type brokers struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *brokers) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.house.Brokers())
}

type products struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *products) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.house.Products())
}

type addProduct struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *addProduct) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("add-product")
	logger.Info("handling")

	var product auctiontypes.ProductInfo
	if !decode(w, r, logger, &product) {
		return
	}

	err := h.house.AddProduct(product)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	logger.Info("success", lager.Data{"product-id": product.ID})
}
