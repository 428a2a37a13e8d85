package auctiontypes

import (
	"errors"
	"fmt"
)

var ErrNoSuchAuction = errors.New("no such auction")
var ErrNoSuchProduct = errors.New("no such product")
var ErrNoSuchParticipant = errors.New("no such participant")
var ErrAuctionFull = errors.New("auction is full")
var ErrAlreadyRegistered = errors.New("participant already registered in auction")
var ErrNoBrokers = errors.New("no brokers available")
var ErrInvalidMaxBid = errors.New("max bid must not be negative")
var ErrInvalidAuctionRules = errors.New("required participants and max rounds must be positive")
var ErrProductInAuction = errors.New("product is already being auctioned")
var ErrDuplicateProduct = errors.New("product already listed")
var ErrDuplicateParticipant = errors.New("participant already exists")
var ErrDuplicateBroker = errors.New("broker already exists")

var ErrEmptyRoster = errors.New("no participants left in auction")
var ErrUnknownParticipantKind = errors.New("unknown participant kind")

// InvariantViolation marks a defect inside an auction: the auction cannot
// continue and the failure must not be treated like an operator error.
type InvariantViolation struct {
	AuctionGuid string
	Err         error
}

func NewInvariantViolation(auctionGuid string, err error) *InvariantViolation {
	return &InvariantViolation{AuctionGuid: auctionGuid, Err: err}
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violated in auction %s: %s", v.AuctionGuid, v.Err)
}

func (v *InvariantViolation) Unwrap() error {
	return v.Err
}

func IsInvariantViolation(err error) bool {
	var violation *InvariantViolation
	return errors.As(err, &violation)
}
