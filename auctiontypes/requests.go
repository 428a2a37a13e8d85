package auctiontypes

import "errors"

type CreateAuctionRequest struct {
	ProductID            int             `json:"product_id"`
	RequiredParticipants int             `json:"required_participants"`
	MaxRounds            int             `json:"max_rounds"`
	Creator              *CreatorRequest `json:"creator,omitempty"`
}

// CreatorRequest enrols the participant opening the auction.
type CreatorRequest struct {
	ParticipantID int  `json:"participant_id"`
	MaxBid        int  `json:"max_bid"`
	Active        bool `json:"active"`
}

type CreateAuctionResponse struct {
	Guid string `json:"guid"`
}

type SubscribeRequest struct {
	ParticipantID int  `json:"participant_id"`
	MaxBid        int  `json:"max_bid"`
	Active        bool `json:"active"`
}

type BidRequest struct {
	Amount int `json:"amount"`
}

type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

var errorTypes = map[string]error{
	"NoSuchAuction":       ErrNoSuchAuction,
	"NoSuchProduct":       ErrNoSuchProduct,
	"NoSuchParticipant":   ErrNoSuchParticipant,
	"AuctionFull":         ErrAuctionFull,
	"AlreadyRegistered":   ErrAlreadyRegistered,
	"NoBrokers":           ErrNoBrokers,
	"InvalidMaxBid":       ErrInvalidMaxBid,
	"InvalidAuctionRules": ErrInvalidAuctionRules,
	"ProductInAuction":    ErrProductInAuction,
	"DuplicateProduct":    ErrDuplicateProduct,
}

// ErrorType names a recoverable error for the wire. Unknown errors have no
// name.
func ErrorType(err error) string {
	for name, known := range errorTypes {
		if errors.Is(err, known) {
			return name
		}
	}
	return ""
}

func ErrorFromType(name string) (error, bool) {
	err, ok := errorTypes[name]
	return err, ok
}
