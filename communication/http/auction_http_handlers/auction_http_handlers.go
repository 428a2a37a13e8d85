package auction_http_handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/communication/http/routes"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"
)

func New(house auctiontypes.AuctionHouse, logger lager.Logger) rata.Handlers {
	handlers := rata.Handlers{
		routes.CreateAuction: &createAuction{house: house, logger: logger},
		routes.Auctions:      &auctions{house: house, logger: logger},
		routes.AuctionState:  &auctionState{house: house, logger: logger},
		routes.Subscribe:     &subscribe{house: house, logger: logger},
		routes.TriggerStart:  &triggerStart{house: house, logger: logger},
		routes.SubmitBid:     &submitBid{house: house, logger: logger},

		routes.Participants: &participants{house: house, logger: logger},
		routes.Brokers:      &brokers{house: house, logger: logger},
		routes.Products:     &products{house: house, logger: logger},
		routes.AddProduct:   &addProduct{house: house, logger: logger},
	}

	return handlers
}

func writeJSON(w http.ResponseWriter, status int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(obj)
}

func writeError(w http.ResponseWriter, logger lager.Logger, err error) {
	errorType := auctiontypes.ErrorType(err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auctiontypes.ErrNoSuchAuction),
		errors.Is(err, auctiontypes.ErrNoSuchProduct),
		errors.Is(err, auctiontypes.ErrNoSuchParticipant):
		status = http.StatusNotFound
	case errors.Is(err, auctiontypes.ErrAuctionFull),
		errors.Is(err, auctiontypes.ErrAlreadyRegistered),
		errors.Is(err, auctiontypes.ErrProductInAuction),
		errors.Is(err, auctiontypes.ErrDuplicateProduct):
		status = http.StatusConflict
	case errors.Is(err, auctiontypes.ErrInvalidMaxBid):
		status = http.StatusBadRequest
	case errors.Is(err, auctiontypes.ErrInvalidAuctionRules),
		errors.Is(err, auctiontypes.ErrNoBrokers):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		logger.Error("failed", err)
	} else {
		logger.Info("rejected", lager.Data{"reason": errorType})
	}

	writeJSON(w, status, auctiontypes.ErrorResponse{Type: errorType, Message: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, logger lager.Logger, obj interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(obj)
	if err != nil {
		logger.Error("failed-to-unmarshal", err)
		writeJSON(w, http.StatusBadRequest, auctiontypes.ErrorResponse{Type: "InvalidRequest", Message: err.Error()})
		return false
	}
	return true
}
