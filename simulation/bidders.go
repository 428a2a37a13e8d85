package simulation

import (
	"os"
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/lager/v3"
)

// ActiveBidders plays every active participant. It answers awaiting-bid and
// bid-retry prompts with a bid somewhere between the minimum and the
// participant's budget, and now and then lowballs a first attempt so the
// retry path gets exercised.
type ActiveBidders struct {
	house      auctiontypes.AuctionHouse
	events     <-chan auctiontypes.Event
	budgets    map[int]int
	randomizer auctiontypes.Randomizer
	lowball    int
	logger     lager.Logger

	lock  *sync.Mutex
	tally map[auctiontypes.EventType]int
}

// NewActiveBidders lowballs one first attempt in lowball; zero never does.
func NewActiveBidders(
	house auctiontypes.AuctionHouse,
	events <-chan auctiontypes.Event,
	budgets map[int]int,
	randomizer auctiontypes.Randomizer,
	lowball int,
	logger lager.Logger,
) *ActiveBidders {
	return &ActiveBidders{
		house:      house,
		events:     events,
		budgets:    budgets,
		randomizer: randomizer,
		lowball:    lowball,
		logger:     logger.Session("active-bidders"),
		lock:       &sync.Mutex{},
		tally:      map[auctiontypes.EventType]int{},
	}
}

func (b *ActiveBidders) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)

	for {
		select {
		case <-signals:
			b.drain()
			return nil
		case event := <-b.events:
			b.record(event)

			switch event.Type {
			case auctiontypes.AwaitingBid:
				b.bid(event, b.lowball > 0 && b.randomizer.Intn(b.lowball) == 0)
			case auctiontypes.BidRetry:
				b.bid(event, false)
			}
		}
	}
}

// Tally counts every event seen so far, by type.
func (b *ActiveBidders) Tally() map[auctiontypes.EventType]int {
	b.lock.Lock()
	defer b.lock.Unlock()

	tally := make(map[auctiontypes.EventType]int, len(b.tally))
	for eventType, count := range b.tally {
		tally[eventType] = count
	}
	return tally
}

// drain tallies whatever is still buffered once the house has gone quiet.
func (b *ActiveBidders) drain() {
	for {
		select {
		case event := <-b.events:
			b.record(event)
		default:
			return
		}
	}
}

func (b *ActiveBidders) record(event auctiontypes.Event) {
	b.lock.Lock()
	b.tally[event.Type]++
	b.lock.Unlock()
}

func (b *ActiveBidders) bid(event auctiontypes.Event, lowball bool) {
	budget := b.budgets[event.ParticipantID]

	amount := event.MinBid
	if lowball && event.MinBid > 0 {
		amount = event.MinBid - 1 - b.randomizer.Intn(event.MinBid)
	} else if budget > event.MinBid {
		amount += b.randomizer.Intn(budget - event.MinBid + 1)
	}

	err := b.house.SubmitBid(event.AuctionGuid, amount)
	if err != nil {
		b.logger.Error("failed-to-submit-bid", err, lager.Data{
			"auction-guid": event.AuctionGuid,
			"participant":  event.ParticipantID,
			"amount":       amount,
		})
	}
}
