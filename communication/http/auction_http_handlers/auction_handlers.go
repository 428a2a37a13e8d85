package auction_http_handlers

import (
	"net/http"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/lager/v3"
)

type createAuction struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *createAuction) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("create-auction")
	logger.Info("handling")

	var request auctiontypes.CreateAuctionRequest
	if !decode(w, r, logger, &request) {
		return
	}

	var guid string
	var err error
	if request.Creator != nil {
		guid, err = h.house.OpenAuction(
			request.Creator.ParticipantID,
			request.Creator.MaxBid,
			request.Creator.Active,
			request.ProductID,
			request.RequiredParticipants,
			request.MaxRounds,
		)
	} else {
		guid, err = h.house.CreateAuction(request.ProductID, request.RequiredParticipants, request.MaxRounds)
	}
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, auctiontypes.CreateAuctionResponse{Guid: guid})
	logger.Info("success", lager.Data{"auction-guid": guid})
}

type auctions struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *auctions) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.house.Auctions())
}

type auctionState struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *auctionState) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	guid := r.FormValue(":guid")
	logger := h.logger.Session("auction-state", lager.Data{"auction-guid": guid})

	state, err := h.house.AuctionState(guid)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

type subscribe struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *subscribe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	guid := r.FormValue(":guid")
	logger := h.logger.Session("subscribe", lager.Data{"auction-guid": guid})
	logger.Info("handling")

	var request auctiontypes.SubscribeRequest
	if !decode(w, r, logger, &request) {
		return
	}

	err := h.house.Subscribe(guid, request.ParticipantID, request.MaxBid, request.Active)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	logger.Info("success", lager.Data{"participant": request.ParticipantID})
}

type triggerStart struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *triggerStart) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	guid := r.FormValue(":guid")
	logger := h.logger.Session("trigger-start", lager.Data{"auction-guid": guid})

	err := h.house.TriggerStart(guid)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	logger.Info("success")
}

type submitBid struct {
	house  auctiontypes.AuctionHouse
	logger lager.Logger
}

func (h *submitBid) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	guid := r.FormValue(":guid")
	logger := h.logger.Session("submit-bid", lager.Data{"auction-guid": guid})

	var request auctiontypes.BidRequest
	if !decode(w, r, logger, &request) {
		return
	}

	err := h.house.SubmitBid(guid, request.Amount)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	logger.Info("success", lager.Data{"amount": request.Amount})
}
