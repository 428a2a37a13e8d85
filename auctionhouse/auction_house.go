package auctionhouse

import (
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctionrunner"
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/broker"
	"code.cloudfoundry.org/auctionhouse/participant"
	"code.cloudfoundry.org/auctionhouse/product"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// FatalHandler is called with any error an auction cannot recover from.
type FatalHandler func(err error)

type House struct {
	logger       lager.Logger
	clock        clock.Clock
	sink         auctiontypes.EventSink
	randomizer   auctiontypes.Randomizer
	generateGuid func() string
	fatal        FatalHandler

	productLock *sync.Mutex
	products    []*product.Product

	lock         *sync.RWMutex
	participants []*participant.Participant
	brokers      []*broker.Broker
	auctions     map[string]*auctionrunner.Auction
	auctionOrder []string
}

type Option func(*House)

func WithGuidGenerator(generate func() string) Option {
	return func(h *House) {
		h.generateGuid = generate
	}
}

func WithFatalHandler(handler FatalHandler) Option {
	return func(h *House) {
		h.fatal = handler
	}
}

func New(
	logger lager.Logger,
	clock clock.Clock,
	sink auctiontypes.EventSink,
	randomizer auctiontypes.Randomizer,
	opts ...Option,
) *House {
	h := &House{
		logger:      logger.Session("auction-house"),
		clock:       clock,
		sink:        sink,
		randomizer:  randomizer,
		productLock: &sync.Mutex{},
		lock:        &sync.RWMutex{},
		auctions:    map[string]*auctionrunner.Auction{},
	}
	h.fatal = func(err error) {
		h.logger.Fatal("auction-invariant-violated", err)
	}
	h.generateGuid = newGuid

	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *House) AddProduct(info auctiontypes.ProductInfo) error {
	h.productLock.Lock()
	defer h.productLock.Unlock()

	for _, p := range h.products {
		if p.ID() == info.ID {
			return auctiontypes.ErrDuplicateProduct
		}
	}
	info.SalePrice = nil
	h.products = append(h.products, product.New(info))
	h.logger.Info("added-product", lager.Data{"product-id": info.ID, "name": info.Name})
	return nil
}

func (h *House) AddParticipant(p *participant.Participant) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	for _, existing := range h.participants {
		if existing.ID() == p.ID() {
			return auctiontypes.ErrDuplicateParticipant
		}
	}
	h.participants = append(h.participants, p)
	return nil
}

func (h *House) AddBroker(b *broker.Broker) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	for _, existing := range h.brokers {
		if existing.Name() == b.Name() {
			return auctiontypes.ErrDuplicateBroker
		}
	}
	h.brokers = append(h.brokers, b)
	return nil
}

// RemoveProduct takes a sold product off the list.
func (h *House) RemoveProduct(productID int) error {
	h.productLock.Lock()
	defer h.productLock.Unlock()

	for i, p := range h.products {
		if p.ID() == productID {
			h.products = append(h.products[:i], h.products[i+1:]...)
			h.logger.Info("removed-product", lager.Data{"product-id": productID})
			return nil
		}
	}
	return auctiontypes.ErrNoSuchProduct
}

func (h *House) BrokerPool() []*broker.Broker {
	h.lock.RLock()
	defer h.lock.RUnlock()

	brokers := make([]*broker.Broker, len(h.brokers))
	copy(brokers, h.brokers)
	return brokers
}

func (h *House) RetireAuction(auctionGuid string) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if _, ok := h.auctions[auctionGuid]; !ok {
		return
	}
	delete(h.auctions, auctionGuid)
	for i, guid := range h.auctionOrder {
		if guid == auctionGuid {
			h.auctionOrder = append(h.auctionOrder[:i], h.auctionOrder[i+1:]...)
			break
		}
	}
	h.logger.Info("retired-auction", lager.Data{"auction-guid": auctionGuid})
}

func (h *House) Products() []auctiontypes.ProductInfo {
	h.productLock.Lock()
	products := make([]*product.Product, len(h.products))
	copy(products, h.products)
	h.productLock.Unlock()

	infos := make([]auctiontypes.ProductInfo, 0, len(products))
	for _, p := range products {
		infos = append(infos, p.Info())
	}
	return infos
}

func (h *House) Participants() []auctiontypes.ParticipantInfo {
	h.lock.RLock()
	participants := make([]*participant.Participant, len(h.participants))
	copy(participants, h.participants)
	h.lock.RUnlock()

	infos := make([]auctiontypes.ParticipantInfo, 0, len(participants))
	for _, p := range participants {
		infos = append(infos, p.Info())
	}
	return infos
}

func (h *House) Brokers() []auctiontypes.BrokerInfo {
	brokers := h.BrokerPool()

	infos := make([]auctiontypes.BrokerInfo, 0, len(brokers))
	for _, b := range brokers {
		infos = append(infos, b.Info())
	}
	return infos
}

func (h *House) findProduct(productID int) (*product.Product, bool) {
	h.productLock.Lock()
	defer h.productLock.Unlock()

	for _, p := range h.products {
		if p.ID() == productID {
			return p, true
		}
	}
	return nil, false
}

func (h *House) findParticipant(participantID int) (*participant.Participant, bool) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	for _, p := range h.participants {
		if p.ID() == participantID {
			return p, true
		}
	}
	return nil, false
}

func (h *House) findAuction(auctionGuid string) (*auctionrunner.Auction, bool) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	auction, ok := h.auctions[auctionGuid]
	return auction, ok
}
