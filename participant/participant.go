package participant

import (
	"sort"
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/broker"
	"github.com/shopspring/decimal"
)

// Assignment ties a participant to an auction through one broker.
type Assignment struct {
	Broker *broker.Broker
	Active bool
}

type Profile struct {
	Address       string
	Birthday      string
	CompanyType   auctiontypes.CompanyType
	SocialCapital decimal.Decimal
}

type Participant struct {
	id      int
	name    string
	kind    auctiontypes.ParticipantKind
	profile Profile

	lock             *sync.Mutex
	maxBid           int
	wins             int
	auctionsInvolved int
	assignments      map[string]Assignment
}

type Option func(*Participant)

func WithProfile(profile Profile) Option {
	return func(p *Participant) {
		p.profile = profile
	}
}

// WithHistory seeds the counters of a participant loaded from an inventory.
func WithHistory(wins, auctionsInvolved int) Option {
	return func(p *Participant) {
		p.wins = wins
		p.auctionsInvolved = auctionsInvolved
	}
}

func New(id int, name string, kind auctiontypes.ParticipantKind, opts ...Option) *Participant {
	p := &Participant{
		id:          id,
		name:        name,
		kind:        kind,
		lock:        &sync.Mutex{},
		assignments: map[string]Assignment{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Participant) ID() int {
	return p.id
}

func (p *Participant) Name() string {
	return p.name
}

func (p *Participant) Kind() auctiontypes.ParticipantKind {
	return p.kind
}

func (p *Participant) MaxBid() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.maxBid
}

func (p *Participant) SetMaxBid(maxBid int) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.maxBid = maxBid
}

func (p *Participant) Wins() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.wins
}

func (p *Participant) WinAuction() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.wins++
}

func (p *Participant) AuctionsInvolved() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.auctionsInvolved
}

// Involve records that the participant bids in an auction through the given
// broker.
func (p *Participant) Involve(auctionGuid string, b *broker.Broker, active bool) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, ok := p.assignments[auctionGuid]; ok {
		return auctiontypes.ErrAlreadyRegistered
	}
	p.assignments[auctionGuid] = Assignment{Broker: b, Active: active}
	p.auctionsInvolved++
	return nil
}

func (p *Participant) Detach(auctionGuid string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	delete(p.assignments, auctionGuid)
}

func (p *Participant) Assignment(auctionGuid string) (Assignment, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	assignment, ok := p.assignments[auctionGuid]
	return assignment, ok
}

func (p *Participant) IsRegistered(auctionGuid string) bool {
	_, ok := p.Assignment(auctionGuid)
	return ok
}

// PlaceBid is the passive bidding strategy: somewhere between the current
// minimum and the participant's ceiling, biased towards the minimum.
func (p *Participant) PlaceBid(minBid int, randomizer auctiontypes.Randomizer) int {
	maxBid := p.MaxBid()
	divisor := randomizer.Intn(10) + 1
	return minBid + (maxBid-minBid)/divisor
}

func (p *Participant) Info() auctiontypes.ParticipantInfo {
	p.lock.Lock()
	defer p.lock.Unlock()

	auctions := make([]string, 0, len(p.assignments))
	for guid := range p.assignments {
		auctions = append(auctions, guid)
	}
	sort.Strings(auctions)

	return auctiontypes.ParticipantInfo{
		ID:               p.id,
		Name:             p.name,
		Kind:             p.kind,
		Address:          p.profile.Address,
		Birthday:         p.profile.Birthday,
		CompanyType:      p.profile.CompanyType,
		SocialCapital:    p.profile.SocialCapital,
		MaxBid:           p.maxBid,
		Wins:             p.wins,
		AuctionsInvolved: p.auctionsInvolved,
		Auctions:         auctions,
	}
}
