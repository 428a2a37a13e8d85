package auctiontypes

import "time"

// EventSink receives auction progress notifications. Auctions never hold
// their own lock while calling Emit.
type EventSink interface {
	Emit(event Event)
}

type EventType string

const (
	ParticipantJoined EventType = "participant-joined"
	QuorumProgress    EventType = "quorum-progress"
	QuorumReached     EventType = "quorum-reached"
	RosterPublished   EventType = "roster"
	AuctionStarted    EventType = "auction-started"
	RoundStarted      EventType = "round-started"
	AwaitingBid       EventType = "awaiting-bid"
	BidRetry          EventType = "bid-retry"
	BidReceived       EventType = "bid-received"
	RoundWinner       EventType = "round-winner"
	ParticipantLeft   EventType = "participant-left"
	CommissionKept    EventType = "commission-kept"
	ProductRemoved    EventType = "product-removed"
	ProductSold       EventType = "product-sold"
	NoSale            EventType = "no-sale"
	AuctionEnded      EventType = "auction-ended"
	AuctionFailed     EventType = "auction-failed"
)

type Event struct {
	Type            EventType `json:"type"`
	AuctionGuid     string    `json:"auction_guid"`
	ProductID       int       `json:"product_id,omitempty"`
	Round           int       `json:"round,omitempty"`
	ParticipantID   int       `json:"participant_id,omitempty"`
	ParticipantName string    `json:"participant_name,omitempty"`
	BrokerName      string    `json:"broker_name,omitempty"`
	Amount          int       `json:"amount,omitempty"`
	MinBid          int       `json:"min_bid,omitempty"`
	Current         int       `json:"current,omitempty"`
	Required        int       `json:"required,omitempty"`
	Message         string    `json:"message,omitempty"`
	Time            time.Time `json:"time"`
}

// NoopSink drops every event.
type NoopSink struct{}

func (NoopSink) Emit(Event) {}
