package auctionrunner

import (
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/lager/v3"
	"github.com/shopspring/decimal"
)

// SellProduct settles the auction for the given winning bid. Nothing happens
// to the product unless the bid beats its minimum price, and nothing changes
// for a winner whose kind has no commission tier. A product can only be sold
// once; later calls return product.ErrAlreadySold and change nothing.
func (a *Auction) SellProduct(winner Bid) (auctiontypes.SaleResult, error) {
	logger := a.logger.Session("sell-product", lager.Data{
		"winner":      winner.Bidder.ID(),
		"winning-bid": winner.Amount,
	})

	result := auctiontypes.SaleResult{
		AuctionGuid: a.guid,
		ProductID:   a.product.ID(),
		WinnerID:    winner.Bidder.ID(),
		BrokerName:  winner.Broker.Name(),
		WinningBid:  winner.Amount,
		Commission:  decimal.Zero,
	}

	if !a.product.Clears(winner.Amount) {
		logger.Info("below-minimum-price", lager.Data{"minimum-price": a.product.MinimumPrice().String()})
		a.emit(auctiontypes.Event{
			Type:            auctiontypes.NoSale,
			ParticipantID:   winner.Bidder.ID(),
			ParticipantName: winner.Bidder.Name(),
			Amount:          winner.Amount,
		})
		return result, nil
	}

	_, err := winner.Bidder.Kind().CommissionTier()
	if err != nil {
		logger.Error("failed-to-find-commission-tier", err)
		return result, auctiontypes.NewInvariantViolation(a.guid, err)
	}

	err = a.product.MarkSold(winner.Amount)
	if err != nil {
		logger.Error("failed-to-mark-sold", err)
		return result, err
	}

	winner.Bidder.WinAuction()

	net, commission, err := winner.Broker.KeepCommission(winner.Bidder, winner.Amount)
	if err != nil {
		return result, auctiontypes.NewInvariantViolation(a.guid, err)
	}
	result.Sold = true
	result.Commission = commission
	result.NetAmount = net

	a.emit(auctiontypes.Event{
		Type:            auctiontypes.CommissionKept,
		ParticipantID:   winner.Bidder.ID(),
		ParticipantName: winner.Bidder.Name(),
		BrokerName:      winner.Broker.Name(),
		Amount:          winner.Amount,
		Message:         commission.String(),
	})

	err = a.registry.RemoveProduct(a.product.ID())
	if err != nil {
		logger.Error("failed-to-remove-product", err)
	} else {
		a.emit(auctiontypes.Event{Type: auctiontypes.ProductRemoved})
	}

	a.detachAll()

	a.emit(auctiontypes.Event{
		Type:            auctiontypes.ProductSold,
		ParticipantID:   winner.Bidder.ID(),
		ParticipantName: winner.Bidder.Name(),
		BrokerName:      winner.Broker.Name(),
		Amount:          winner.Amount,
	})
	logger.Info("sold", lager.Data{"net": net, "commission": commission.String()})

	return result, nil
}
