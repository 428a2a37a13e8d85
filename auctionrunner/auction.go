package auctionrunner

import (
	"sync"
	"time"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/broker"
	"code.cloudfoundry.org/auctionhouse/participant"
	"code.cloudfoundry.org/auctionhouse/product"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// Registry is the part of the auction house an auction calls back into.
type Registry interface {
	BrokerPool() []*broker.Broker
	RemoveProduct(productID int) error
	RetireAuction(auctionGuid string)
}

type Auction struct {
	guid       string
	product    *product.Product
	rules      auctiontypes.AuctionRules
	registry   Registry
	sink       auctiontypes.EventSink
	randomizer auctiontypes.Randomizer
	clock      clock.Clock
	logger     lager.Logger

	lock                *sync.Mutex
	cond                *sync.Cond
	status              auctiontypes.AuctionStatus
	currentParticipants int
	startTriggered      bool
	round               int
	minBid              int
	pendingBid          *int
	awaiting            *participant.Participant
	roster              []*participant.Participant
	createdAt           time.Time
	startedAt           time.Time

	done   chan struct{}
	result auctiontypes.SaleResult
	err    error
}

func New(
	guid string,
	p *product.Product,
	rules auctiontypes.AuctionRules,
	registry Registry,
	sink auctiontypes.EventSink,
	randomizer auctiontypes.Randomizer,
	clock clock.Clock,
	logger lager.Logger,
) *Auction {
	lock := &sync.Mutex{}
	return &Auction{
		guid:       guid,
		product:    p,
		rules:      rules,
		registry:   registry,
		sink:       sink,
		randomizer: randomizer,
		clock:      clock,
		logger: logger.Session("auction", lager.Data{
			"auction-guid": guid,
			"product-id":   p.ID(),
		}),
		lock:      lock,
		cond:      sync.NewCond(lock),
		status:    auctiontypes.AwaitingQuorum,
		createdAt: clock.Now(),
		done:      make(chan struct{}),
	}
}

func (a *Auction) Guid() string {
	return a.guid
}

func (a *Auction) Product() *product.Product {
	return a.product
}

// Subscribe enrols a participant. The broker representing it in this auction
// is drawn at random from the house's broker pool.
func (a *Auction) Subscribe(p *participant.Participant, maxBid int, isActive bool) error {
	logger := a.logger.Session("subscribe", lager.Data{"participant": p.ID(), "active": isActive})

	if maxBid < 0 {
		logger.Info("invalid-max-bid", lager.Data{"max-bid": maxBid})
		return auctiontypes.ErrInvalidMaxBid
	}

	brokers := a.registry.BrokerPool()
	if len(brokers) == 0 {
		logger.Error("failed-to-assign-broker", auctiontypes.ErrNoBrokers)
		return auctiontypes.ErrNoBrokers
	}

	a.lock.Lock()
	if a.currentParticipants >= a.rules.RequiredParticipants {
		a.lock.Unlock()
		logger.Info("auction-full")
		return auctiontypes.ErrAuctionFull
	}

	b := brokers[a.randomizer.Intn(len(brokers))]
	err := p.Involve(a.guid, b, isActive)
	if err != nil {
		a.lock.Unlock()
		logger.Info("already-registered")
		return err
	}

	p.SetMaxBid(maxBid)
	b.AddClient(p)
	a.roster = append(a.roster, p)
	a.currentParticipants++
	current := a.currentParticipants
	a.cond.Broadcast()
	a.lock.Unlock()

	logger.Info("subscribed", lager.Data{"broker": b.Name(), "current": current})

	a.emit(auctiontypes.Event{
		Type:            auctiontypes.ParticipantJoined,
		ParticipantID:   p.ID(),
		ParticipantName: p.Name(),
		BrokerName:      b.Name(),
	})
	a.emit(auctiontypes.Event{
		Type:     auctiontypes.QuorumProgress,
		Current:  current,
		Required: a.rules.RequiredParticipants,
	})

	return nil
}

// Abandon fails an auction whose process was never run and releases anyone
// already enrolled in it. It must not be called once Run has started.
func (a *Auction) Abandon(err error) {
	a.logger.Info("abandoned", lager.Data{"reason": err.Error()})
	a.detachAll()

	a.lock.Lock()
	a.status = auctiontypes.Failed
	a.err = err
	a.lock.Unlock()

	a.emit(auctiontypes.Event{Type: auctiontypes.AuctionFailed, Message: err.Error()})
	close(a.done)
}

// TriggerStart sets the one-shot start signal. Triggering before quorum is
// allowed; the auction starts as soon as quorum is also reached.
func (a *Auction) TriggerStart() {
	a.lock.Lock()
	a.startTriggered = true
	a.cond.Broadcast()
	a.lock.Unlock()

	a.logger.Info("start-triggered")
}

// SubmitBid fills the bid mailbox for the active participant the auction is
// waiting on. It reports false, and drops the amount, when nobody is waiting.
func (a *Auction) SubmitBid(amount int) bool {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.awaiting == nil {
		a.logger.Info("ignored-unrequested-bid", lager.Data{"amount": amount})
		return false
	}

	a.pendingBid = &amount
	a.cond.Broadcast()
	return true
}

// RaiseMinBid moves the minimum bid up. Lower values are ignored.
func (a *Auction) RaiseMinBid(minBid int) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if minBid > a.minBid {
		a.minBid = minBid
	}
}

func (a *Auction) MinBid() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.minBid
}

func (a *Auction) Roster() []*participant.Participant {
	a.lock.Lock()
	defer a.lock.Unlock()

	roster := make([]*participant.Participant, len(a.roster))
	copy(roster, a.roster)
	return roster
}

func (a *Auction) State() auctiontypes.AuctionState {
	a.lock.Lock()
	defer a.lock.Unlock()

	state := auctiontypes.AuctionState{
		Guid:                 a.guid,
		ProductID:            a.product.ID(),
		ProductName:          a.product.Name(),
		Status:               a.status,
		RequiredParticipants: a.rules.RequiredParticipants,
		CurrentParticipants:  a.currentParticipants,
		MaxRounds:            a.rules.MaxRounds,
		Round:                a.round,
		MinBid:               a.minBid,
		StartTriggered:       a.startTriggered,
		Roster:               []auctiontypes.RosterEntry{},
		CreatedAt:            a.createdAt,
	}
	if a.awaiting != nil {
		state.AwaitingParticipant = a.awaiting.ID()
	}

	for _, p := range a.roster {
		entry := auctiontypes.RosterEntry{
			ParticipantID:   p.ID(),
			ParticipantName: p.Name(),
		}
		if assignment, ok := p.Assignment(a.guid); ok {
			entry.BrokerName = assignment.Broker.Name()
			entry.Active = assignment.Active
		}
		state.Roster = append(state.Roster, entry)
	}

	return state
}

func (a *Auction) Done() <-chan struct{} {
	return a.done
}

// Result is only meaningful once Done is closed.
func (a *Auction) Result() (auctiontypes.SaleResult, error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.result, a.err
}

func (a *Auction) setStatus(status auctiontypes.AuctionStatus) {
	a.lock.Lock()
	a.status = status
	a.lock.Unlock()
}

func (a *Auction) emit(event auctiontypes.Event) {
	event.AuctionGuid = a.guid
	event.ProductID = a.product.ID()
	event.Time = a.clock.Now()
	a.sink.Emit(event)
}
