package auctionrunner

import (
	"fmt"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/participant"
	"code.cloudfoundry.org/lager/v3"
)

/*
Run drives the auction from admission to sale. It blocks until the required
number of participants has subscribed, publishes the roster, blocks until the
start signal, and then runs at most MaxRounds bidding rounds. Each round every
participant bids once in roster order; the round winner's bid becomes the new
minimum and anyone who can no longer afford it is disqualified. Bidding stops
early once a single participant is left. The last round's winner takes the
product if the bid beats the product's minimum price.

Run returns an *auctiontypes.InvariantViolation when the auction reaches a state
it cannot continue from. The auction retires itself from the registry in every
case.
*/
func (a *Auction) Run() error {
	logger := a.logger.Session("run")
	logger.Info("starting")

	defer close(a.done)
	defer a.registry.RetireAuction(a.guid)

	a.awaitQuorum()
	a.publishRoster()
	a.awaitStart()

	logger.Info("bidding")
	winner, rounds, err := a.runRounds(logger)
	if err == nil {
		a.setStatus(auctiontypes.Finalizing)
		var result auctiontypes.SaleResult
		result, err = a.SellProduct(winner)
		result.Rounds = rounds
		result.Duration = a.clock.Since(a.startedAt)
		a.lock.Lock()
		a.result = result
		a.lock.Unlock()
	}

	a.detachAll()

	if err != nil {
		logger.Error("failed", err)
		a.lock.Lock()
		a.status = auctiontypes.Failed
		a.err = err
		a.lock.Unlock()
		a.emit(auctiontypes.Event{Type: auctiontypes.AuctionFailed, Message: err.Error()})
		return err
	}

	a.setStatus(auctiontypes.Completed)
	a.emit(auctiontypes.Event{Type: auctiontypes.AuctionEnded})
	logger.Info("succeeded")
	return nil
}

func (a *Auction) awaitQuorum() {
	a.lock.Lock()
	for a.currentParticipants < a.rules.RequiredParticipants {
		a.cond.Wait()
	}
	a.status = auctiontypes.AwaitingStart
	current := a.currentParticipants
	a.lock.Unlock()

	a.logger.Info("quorum-reached", lager.Data{"participants": current})
	a.emit(auctiontypes.Event{
		Type:     auctiontypes.QuorumReached,
		Current:  current,
		Required: a.rules.RequiredParticipants,
	})
}

func (a *Auction) publishRoster() {
	for _, p := range a.Roster() {
		assignment, _ := p.Assignment(a.guid)
		event := auctiontypes.Event{
			Type:            auctiontypes.RosterPublished,
			ParticipantID:   p.ID(),
			ParticipantName: p.Name(),
		}
		if assignment.Broker != nil {
			event.BrokerName = assignment.Broker.Name()
		}
		a.emit(event)
	}
}

func (a *Auction) awaitStart() {
	a.lock.Lock()
	for !a.startTriggered {
		a.cond.Wait()
	}
	a.status = auctiontypes.Bidding
	a.startedAt = a.clock.Now()
	a.lock.Unlock()

	a.emit(auctiontypes.Event{Type: auctiontypes.AuctionStarted})
}

func (a *Auction) runRounds(logger lager.Logger) (Bid, int, error) {
	var winner Bid
	rounds := 0

	for round := 1; round <= a.rules.MaxRounds; round++ {
		a.lock.Lock()
		a.round = round
		minBid := a.minBid
		a.lock.Unlock()
		rounds = round

		logger.Debug("round-started", lager.Data{"round": round, "min-bid": minBid})
		a.emit(auctiontypes.Event{Type: auctiontypes.RoundStarted, Round: round, MinBid: minBid})

		bids, err := a.collectBids(round)
		if err != nil {
			return Bid{}, rounds, err
		}

		winner, err = ResolveWinner(bids)
		if err != nil {
			return Bid{}, rounds, auctiontypes.NewInvariantViolation(a.guid, err)
		}

		a.RaiseMinBid(winner.Amount)
		a.emit(auctiontypes.Event{
			Type:            auctiontypes.RoundWinner,
			Round:           round,
			ParticipantID:   winner.Bidder.ID(),
			ParticipantName: winner.Bidder.Name(),
			BrokerName:      winner.Broker.Name(),
			Amount:          winner.Amount,
		})

		remaining, err := a.Disqualify()
		if err != nil {
			return Bid{}, rounds, err
		}
		if remaining == 1 {
			logger.Info("single-participant-left", lager.Data{"round": round})
			break
		}
	}

	return winner, rounds, nil
}

func (a *Auction) collectBids(round int) ([]Bid, error) {
	bids := []Bid{}

	for _, p := range a.Roster() {
		assignment, ok := p.Assignment(a.guid)
		if !ok {
			return nil, auctiontypes.NewInvariantViolation(a.guid, fmt.Errorf("participant %d has no assignment", p.ID()))
		}

		var amount int
		if assignment.Active {
			amount = assignment.Broker.RelayBid(p, a.awaitActiveBid(round, p))
		} else {
			amount = assignment.Broker.RequestBid(p, a.MinBid(), a.randomizer)
		}

		bids = append(bids, Bid{Amount: amount, Bidder: p, Broker: assignment.Broker})
		a.emit(auctiontypes.Event{
			Type:            auctiontypes.BidReceived,
			Round:           round,
			ParticipantID:   p.ID(),
			ParticipantName: p.Name(),
			BrokerName:      assignment.Broker.Name(),
			Amount:          amount,
		})
	}

	return bids, nil
}

// awaitActiveBid blocks until an acceptable bid for p lands in the mailbox.
// Bids over the participant's ceiling are clamped; bids under the minimum are
// sent back with a retry prompt.
func (a *Auction) awaitActiveBid(round int, p *participant.Participant) int {
	a.lock.Lock()
	a.awaiting = p
	a.pendingBid = nil
	minBid := a.minBid
	a.lock.Unlock()

	a.emit(auctiontypes.Event{
		Type:            auctiontypes.AwaitingBid,
		Round:           round,
		ParticipantID:   p.ID(),
		ParticipantName: p.Name(),
		MinBid:          minBid,
	})

	a.lock.Lock()
	defer a.lock.Unlock()

	for {
		for a.pendingBid == nil {
			a.cond.Wait()
		}

		amount := *a.pendingBid
		a.pendingBid = nil

		maxBid := p.MaxBid()
		if amount > maxBid {
			amount = maxBid
		} else if amount < a.minBid {
			minBid := a.minBid
			a.lock.Unlock()
			a.logger.Info("rejected-low-bid", lager.Data{"participant": p.ID(), "amount": amount, "min-bid": minBid})
			a.emit(auctiontypes.Event{
				Type:            auctiontypes.BidRetry,
				Round:           round,
				ParticipantID:   p.ID(),
				ParticipantName: p.Name(),
				Amount:          amount,
				MinBid:          minBid,
			})
			a.lock.Lock()
			continue
		}

		a.awaiting = nil
		return amount
	}
}

// Disqualify drops every participant whose ceiling is below the current
// minimum bid and returns how many are left.
func (a *Auction) Disqualify() (int, error) {
	a.lock.Lock()
	kept := []*participant.Participant{}
	dropped := []*participant.Participant{}
	for _, p := range a.roster {
		if p.MaxBid() < a.minBid {
			p.Detach(a.guid)
			dropped = append(dropped, p)
		} else {
			kept = append(kept, p)
		}
	}
	a.roster = kept
	minBid := a.minBid
	a.lock.Unlock()

	for _, p := range dropped {
		a.logger.Info("disqualified", lager.Data{"participant": p.ID(), "min-bid": minBid})
		a.emit(auctiontypes.Event{
			Type:            auctiontypes.ParticipantLeft,
			ParticipantID:   p.ID(),
			ParticipantName: p.Name(),
			MinBid:          minBid,
			Message:         "disqualified",
		})
	}

	if len(kept) == 0 {
		return 0, auctiontypes.NewInvariantViolation(a.guid, auctiontypes.ErrEmptyRoster)
	}
	return len(kept), nil
}

func (a *Auction) detachAll() {
	a.lock.Lock()
	remaining := a.roster
	for _, p := range remaining {
		p.Detach(a.guid)
	}
	a.roster = []*participant.Participant{}
	a.lock.Unlock()

	for _, p := range remaining {
		a.emit(auctiontypes.Event{
			Type:            auctiontypes.ParticipantLeft,
			ParticipantID:   p.ID(),
			ParticipantName: p.Name(),
			Message:         "auction-ended",
		})
	}
}
