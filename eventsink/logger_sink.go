package eventsink

import (
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/lager/v3"
)

type LoggerSink struct {
	logger lager.Logger
}

func NewLoggerSink(logger lager.Logger) *LoggerSink {
	return &LoggerSink{logger: logger.Session("events")}
}

func (s *LoggerSink) Emit(event auctiontypes.Event) {
	data := lager.Data{
		"auction-guid": event.AuctionGuid,
		"product-id":   event.ProductID,
	}
	if event.Round > 0 {
		data["round"] = event.Round
	}
	if event.ParticipantName != "" {
		data["participant"] = event.ParticipantName
	}
	if event.BrokerName != "" {
		data["broker"] = event.BrokerName
	}
	if event.Amount != 0 {
		data["amount"] = event.Amount
	}
	if event.MinBid != 0 {
		data["min-bid"] = event.MinBid
	}
	if event.Required != 0 {
		data["current"] = event.Current
		data["required"] = event.Required
	}
	if event.Message != "" {
		data["message"] = event.Message
	}

	switch event.Type {
	case auctiontypes.BidReceived, auctiontypes.AwaitingBid, auctiontypes.RosterPublished, auctiontypes.QuorumProgress:
		s.logger.Debug(string(event.Type), data)
	default:
		s.logger.Info(string(event.Type), data)
	}
}
