package auctiontypes

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionHouse is the operator-facing surface of the auction house. The HTTP
// handlers, the simulation and the daemon all speak to it.
type AuctionHouse interface {
	CreateAuction(productID int, requiredParticipants int, maxRounds int) (string, error)
	OpenAuction(participantID int, maxBid int, isActive bool, productID int, requiredParticipants int, maxRounds int) (string, error)
	Subscribe(auctionGuid string, participantID int, maxBid int, isActive bool) error
	TriggerStart(auctionGuid string) error
	SubmitBid(auctionGuid string, amount int) error

	AuctionState(auctionGuid string) (AuctionState, error)
	Auctions() []AuctionState
	Participants() []ParticipantInfo
	Brokers() []BrokerInfo
	Products() []ProductInfo

	AddProduct(product ProductInfo) error
}

// Randomizer is the random policy the house draws from: broker assignment
// and passive bid divisors.
type Randomizer interface {
	Intn(n int) int
}

type AuctionStatus string

const (
	AwaitingQuorum AuctionStatus = "awaiting-quorum"
	AwaitingStart  AuctionStatus = "awaiting-start"
	Bidding        AuctionStatus = "bidding"
	Finalizing     AuctionStatus = "finalizing"
	Completed      AuctionStatus = "completed"
	Failed         AuctionStatus = "failed"
)

type AuctionRules struct {
	RequiredParticipants int `json:"required_participants"`
	MaxRounds            int `json:"max_rounds"`
}

type AuctionState struct {
	Guid                 string        `json:"guid"`
	ProductID            int           `json:"product_id"`
	ProductName          string        `json:"product_name"`
	Status               AuctionStatus `json:"status"`
	RequiredParticipants int           `json:"required_participants"`
	CurrentParticipants  int           `json:"current_participants"`
	MaxRounds            int           `json:"max_rounds"`
	Round                int           `json:"round"`
	MinBid               int           `json:"min_bid"`
	StartTriggered       bool          `json:"start_triggered"`
	AwaitingParticipant  int           `json:"awaiting_participant,omitempty"`
	Roster               []RosterEntry `json:"roster"`
	CreatedAt            time.Time     `json:"created_at"`
}

type RosterEntry struct {
	ParticipantID   int    `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
	BrokerName      string `json:"broker_name"`
	Active          bool   `json:"active"`
}

type ParticipantInfo struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Kind             ParticipantKind `json:"kind"`
	Address          string          `json:"address,omitempty"`
	Birthday         string          `json:"birthday,omitempty"`
	CompanyType      CompanyType     `json:"company_type,omitempty"`
	SocialCapital    decimal.Decimal `json:"social_capital"`
	MaxBid           int             `json:"max_bid"`
	Wins             int             `json:"wins"`
	AuctionsInvolved int             `json:"auctions_involved"`
	Auctions         []string        `json:"auctions"`
}

type BrokerInfo struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Clients []int           `json:"clients"`
}

type ProductCategory string

const (
	Painting  ProductCategory = "painting"
	Jewelry   ProductCategory = "jewelry"
	Furniture ProductCategory = "furniture"
)

type ProductInfo struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Category     ProductCategory   `json:"category,omitempty"`
	Year         int               `json:"year,omitempty"`
	MinimumPrice decimal.Decimal   `json:"minimum_price"`
	SalePrice    *int              `json:"sale_price,omitempty"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

type SaleResult struct {
	AuctionGuid string          `json:"auction_guid"`
	ProductID   int             `json:"product_id"`
	Sold        bool            `json:"sold"`
	WinnerID    int             `json:"winner_id"`
	BrokerName  string          `json:"broker_name"`
	WinningBid  int             `json:"winning_bid"`
	Commission  decimal.Decimal `json:"commission"`
	NetAmount   int             `json:"net_amount"`
	Rounds      int             `json:"rounds"`
	Duration    time.Duration   `json:"duration"`
}
