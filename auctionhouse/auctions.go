package auctionhouse

import (
	"code.cloudfoundry.org/auctionhouse/auctionrunner"
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/util"
	"code.cloudfoundry.org/lager/v3"
)

var newGuid = util.NewAuctionGuid

// CreateAuction opens a new auction for a listed product and starts its
// process. The process waits for participants and the start signal on its
// own goroutine.
func (h *House) CreateAuction(productID int, requiredParticipants int, maxRounds int) (string, error) {
	logger := h.logger.Session("create-auction", lager.Data{
		"product-id":            productID,
		"required-participants": requiredParticipants,
		"max-rounds":            maxRounds,
	})

	auction, err := h.registerAuction(logger, productID, requiredParticipants, maxRounds)
	if err != nil {
		return "", err
	}

	go h.run(auction)

	logger.Info("created", lager.Data{"auction-guid": auction.Guid()})
	return auction.Guid(), nil
}

// OpenAuction creates an auction on behalf of a participant and enrols them
// in it before the auction's process starts. If the creator cannot be
// enrolled the auction is abandoned and the product is free again.
func (h *House) OpenAuction(participantID int, maxBid int, isActive bool, productID int, requiredParticipants int, maxRounds int) (string, error) {
	logger := h.logger.Session("open-auction", lager.Data{
		"participant": participantID,
		"product-id":  productID,
	})

	if maxBid < 0 {
		logger.Info("invalid-max-bid", lager.Data{"max-bid": maxBid})
		return "", auctiontypes.ErrInvalidMaxBid
	}

	creator, ok := h.findParticipant(participantID)
	if !ok {
		logger.Info("participant-not-found")
		return "", auctiontypes.ErrNoSuchParticipant
	}

	if len(h.BrokerPool()) == 0 {
		logger.Info("no-brokers")
		return "", auctiontypes.ErrNoBrokers
	}

	auction, err := h.registerAuction(logger, productID, requiredParticipants, maxRounds)
	if err != nil {
		return "", err
	}

	err = auction.Subscribe(creator, maxBid, isActive)
	if err != nil {
		logger.Error("failed-to-enrol-creator", err, lager.Data{"auction-guid": auction.Guid()})
		auction.Abandon(err)
		h.RetireAuction(auction.Guid())
		return "", err
	}

	go h.run(auction)

	logger.Info("opened", lager.Data{"auction-guid": auction.Guid()})
	return auction.Guid(), nil
}

// registerAuction lists a new auction for the product without starting it.
// A product can only be in one live auction at a time.
func (h *House) registerAuction(logger lager.Logger, productID int, requiredParticipants int, maxRounds int) (*auctionrunner.Auction, error) {
	if requiredParticipants < 1 || maxRounds < 1 {
		logger.Info("invalid-rules")
		return nil, auctiontypes.ErrInvalidAuctionRules
	}

	p, ok := h.findProduct(productID)
	if !ok {
		logger.Info("product-not-found")
		return nil, auctiontypes.ErrNoSuchProduct
	}

	guid := h.generateGuid()
	auction := auctionrunner.New(
		guid,
		p,
		auctiontypes.AuctionRules{RequiredParticipants: requiredParticipants, MaxRounds: maxRounds},
		h,
		h.sink,
		h.randomizer,
		h.clock,
		h.logger,
	)

	h.lock.Lock()
	defer h.lock.Unlock()

	for _, existing := range h.auctions {
		if existing.Product().ID() == productID {
			logger.Info("product-already-in-auction")
			return nil, auctiontypes.ErrProductInAuction
		}
	}
	h.auctions[guid] = auction
	h.auctionOrder = append(h.auctionOrder, guid)
	return auction, nil
}

func (h *House) Subscribe(auctionGuid string, participantID int, maxBid int, isActive bool) error {
	auction, ok := h.findAuction(auctionGuid)
	if !ok {
		return auctiontypes.ErrNoSuchAuction
	}

	p, ok := h.findParticipant(participantID)
	if !ok {
		return auctiontypes.ErrNoSuchParticipant
	}

	return auction.Subscribe(p, maxBid, isActive)
}

func (h *House) TriggerStart(auctionGuid string) error {
	auction, ok := h.findAuction(auctionGuid)
	if !ok {
		return auctiontypes.ErrNoSuchAuction
	}

	auction.TriggerStart()
	return nil
}

// SubmitBid hands an active participant's bid to the auction. A bid that
// arrives while the auction is not waiting on anyone is dropped.
func (h *House) SubmitBid(auctionGuid string, amount int) error {
	auction, ok := h.findAuction(auctionGuid)
	if !ok {
		return auctiontypes.ErrNoSuchAuction
	}

	auction.SubmitBid(amount)
	return nil
}

func (h *House) AuctionState(auctionGuid string) (auctiontypes.AuctionState, error) {
	auction, ok := h.findAuction(auctionGuid)
	if !ok {
		return auctiontypes.AuctionState{}, auctiontypes.ErrNoSuchAuction
	}
	return auction.State(), nil
}

func (h *House) Auctions() []auctiontypes.AuctionState {
	h.lock.RLock()
	auctions := make([]*auctionrunner.Auction, 0, len(h.auctionOrder))
	for _, guid := range h.auctionOrder {
		auctions = append(auctions, h.auctions[guid])
	}
	h.lock.RUnlock()

	states := make([]auctiontypes.AuctionState, 0, len(auctions))
	for _, auction := range auctions {
		states = append(states, auction.State())
	}
	return states
}

// Lookup returns the running auction, mostly so callers can wait on Done.
func (h *House) Lookup(auctionGuid string) (*auctionrunner.Auction, error) {
	auction, ok := h.findAuction(auctionGuid)
	if !ok {
		return nil, auctiontypes.ErrNoSuchAuction
	}
	return auction, nil
}

func (h *House) run(auction *auctionrunner.Auction) {
	err := auction.Run()
	if err == nil {
		return
	}

	if auctiontypes.IsInvariantViolation(err) {
		h.fatal(err)
		return
	}
	h.logger.Error("auction-failed", err, lager.Data{"auction-guid": auction.Guid()})
}
