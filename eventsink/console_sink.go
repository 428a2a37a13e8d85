package eventsink

import (
	"fmt"
	"io"
	"sync"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"github.com/fatih/color"
)

var (
	announce = color.New(color.FgCyan, color.Bold)
	progress = color.New(color.FgWhite)
	prompt   = color.New(color.FgYellow, color.Bold)
	success  = color.New(color.FgGreen, color.Bold)
	failure  = color.New(color.FgRed, color.Bold)
)

// ConsoleSink writes one human readable line per event, the way an auction
// room display would read them out.
type ConsoleSink struct {
	lock   *sync.Mutex
	writer io.Writer
}

func NewConsoleSink(writer io.Writer) *ConsoleSink {
	return &ConsoleSink{
		lock:   &sync.Mutex{},
		writer: writer,
	}
}

func (s *ConsoleSink) Emit(event auctiontypes.Event) {
	c, line := Describe(event)
	if line == "" {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	c.Fprintf(s.writer, "[%s] %s\n", shortGuid(event.AuctionGuid), line)
}

// Describe renders an event as a sentence along with the color to print it in.
func Describe(event auctiontypes.Event) (*color.Color, string) {
	switch event.Type {
	case auctiontypes.ParticipantJoined:
		return progress, fmt.Sprintf("%s joined through broker %s", event.ParticipantName, event.BrokerName)
	case auctiontypes.QuorumProgress:
		return progress, fmt.Sprintf("%d/%d participants", event.Current, event.Required)
	case auctiontypes.QuorumReached:
		return announce, fmt.Sprintf("quorum of %d reached, waiting for the start signal", event.Required)
	case auctiontypes.RosterPublished:
		return progress, fmt.Sprintf("%s is represented by %s", event.ParticipantName, event.BrokerName)
	case auctiontypes.AuctionStarted:
		return announce, fmt.Sprintf("auction for product %d has started", event.ProductID)
	case auctiontypes.RoundStarted:
		return announce, fmt.Sprintf("round %d, minimum bid %d", event.Round, event.MinBid)
	case auctiontypes.AwaitingBid:
		return prompt, fmt.Sprintf("%s, place a bid of at least %d", event.ParticipantName, event.MinBid)
	case auctiontypes.BidRetry:
		return prompt, fmt.Sprintf("%s, a bid of %d is below the minimum of %d, bid again", event.ParticipantName, event.Amount, event.MinBid)
	case auctiontypes.BidReceived:
		return progress, fmt.Sprintf("Broker %s has received a bid of %d dollars from %s", event.BrokerName, event.Amount, event.ParticipantName)
	case auctiontypes.RoundWinner:
		return announce, fmt.Sprintf("round %d goes to %s with %d", event.Round, event.ParticipantName, event.Amount)
	case auctiontypes.ParticipantLeft:
		return progress, fmt.Sprintf("%s left the auction (%s)", event.ParticipantName, event.Message)
	case auctiontypes.CommissionKept:
		return progress, fmt.Sprintf("Broker %s has kept %s dollars from %s's bid", event.BrokerName, event.Message, event.ParticipantName)
	case auctiontypes.ProductRemoved:
		return progress, fmt.Sprintf("product %d removed from the catalogue", event.ProductID)
	case auctiontypes.ProductSold:
		return success, fmt.Sprintf("product %d sold to %s for %d", event.ProductID, event.ParticipantName, event.Amount)
	case auctiontypes.NoSale:
		return failure, fmt.Sprintf("product %d not sold, best bid %d was too low", event.ProductID, event.Amount)
	case auctiontypes.AuctionEnded:
		return announce, "auction ended"
	case auctiontypes.AuctionFailed:
		return failure, fmt.Sprintf("auction failed: %s", event.Message)
	}
	return progress, ""
}

func shortGuid(guid string) string {
	if len(guid) > 8 {
		return guid[:8]
	}
	return guid
}
