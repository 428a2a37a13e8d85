package broker

import (
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/lager/v3"
	"github.com/shopspring/decimal"
)

// Client is what a broker needs to know about the participants it represents.
type Client interface {
	ID() int
	Name() string
	Kind() auctiontypes.ParticipantKind
	AuctionsInvolved() int
	PlaceBid(minBid int, randomizer auctiontypes.Randomizer) int
}

type Broker struct {
	name   string
	logger lager.Logger

	lock      *sync.Mutex
	balance   decimal.Decimal
	clientIDs []int
}

func New(name string, logger lager.Logger) *Broker {
	return &Broker{
		name:    name,
		logger:  logger.Session("broker", lager.Data{"broker": name}),
		lock:    &sync.Mutex{},
		balance: decimal.Zero,
	}
}

func (b *Broker) Name() string {
	return b.name
}

func (b *Broker) AddClient(client Client) {
	b.lock.Lock()
	defer b.lock.Unlock()

	for _, id := range b.clientIDs {
		if id == client.ID() {
			return
		}
	}
	b.clientIDs = append(b.clientIDs, client.ID())
}

// RequestBid asks a passive client for its bid in the current round.
func (b *Broker) RequestBid(client Client, minBid int, randomizer auctiontypes.Randomizer) int {
	bid := client.PlaceBid(minBid, randomizer)
	b.logger.Debug("received-bid", lager.Data{"client": client.Name(), "bid": bid})
	return bid
}

// RelayBid passes along a bid an active client placed through the house.
func (b *Broker) RelayBid(client Client, bid int) int {
	b.logger.Debug("received-bid", lager.Data{"client": client.Name(), "bid": bid, "active": true})
	return bid
}

// KeepCommission takes the broker's cut of a winning bid according to the
// client's commission tier and returns what is left for the seller.
func (b *Broker) KeepCommission(client Client, bid int) (int, decimal.Decimal, error) {
	tier, err := client.Kind().CommissionTier()
	if err != nil {
		b.logger.Error("failed-to-find-commission-tier", err, lager.Data{"client": client.Name()})
		return 0, decimal.Zero, err
	}

	gross := decimal.NewFromInt(int64(bid))
	rate := tier.RateFor(client.AuctionsInvolved())
	commission := gross.Mul(rate)
	net := gross.Sub(commission).IntPart()

	b.lock.Lock()
	b.balance = b.balance.Add(commission)
	b.lock.Unlock()

	b.logger.Info("kept-commission", lager.Data{
		"client":     client.Name(),
		"bid":        bid,
		"rate":       rate.String(),
		"commission": commission.String(),
	})

	return int(net), commission, nil
}

func (b *Broker) Balance() decimal.Decimal {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.balance
}

func (b *Broker) Info() auctiontypes.BrokerInfo {
	b.lock.Lock()
	defer b.lock.Unlock()

	clients := make([]int, len(b.clientIDs))
	copy(clients, b.clientIDs)

	return auctiontypes.BrokerInfo{
		Name:    b.name,
		Balance: b.balance,
		Clients: clients,
	}
}
