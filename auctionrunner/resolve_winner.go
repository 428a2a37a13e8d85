package auctionrunner

import (
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/broker"
	"code.cloudfoundry.org/auctionhouse/participant"
)

type Bid struct {
	Amount int
	Bidder *participant.Participant
	Broker *broker.Broker
}

// ResolveWinner picks the highest bid. Ties go to the bidder with more past
// wins, and after that to whoever bid first.
func ResolveWinner(bids []Bid) (Bid, error) {
	if len(bids) == 0 {
		return Bid{}, auctiontypes.ErrEmptyRoster
	}

	winner := bids[0]
	winnerWins := winner.Bidder.Wins()
	for _, bid := range bids[1:] {
		wins := bid.Bidder.Wins()
		if bid.Amount > winner.Amount || (bid.Amount == winner.Amount && wins > winnerWins) {
			winner = bid
			winnerWins = wins
		}
	}

	return winner, nil
}
