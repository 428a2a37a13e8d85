package config

import (
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/broker"
	"code.cloudfoundry.org/auctionhouse/participant"
	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

// Registrar is the part of a house an inventory is loaded into.
type Registrar interface {
	AddBroker(b *broker.Broker) error
	AddParticipant(p *participant.Participant) error
	AddProduct(product auctiontypes.ProductInfo) error
}

// Populate registers the inventory with the house. Entries the house refuses
// are collected and returned together; the rest are still registered.
func (i InventoryConfig) Populate(registrar Registrar, logger lager.Logger) error {
	logger = logger.Session("populate-inventory")
	logger.Info("starting", lager.Data{
		"brokers":      len(i.Brokers),
		"participants": len(i.Participants),
		"products":     len(i.Products),
	})

	var errs *multierror.Error

	for _, name := range i.Brokers {
		err := registrar.AddBroker(broker.New(name, logger))
		if err != nil {
			logger.Error("failed-to-add-broker", err, lager.Data{"broker": name})
			errs = multierror.Append(errs, err)
		}
	}

	for _, p := range i.Participants {
		err := registrar.AddParticipant(p.Participant())
		if err != nil {
			logger.Error("failed-to-add-participant", err, lager.Data{"participant": p.ID})
			errs = multierror.Append(errs, err)
		}
	}

	for _, p := range i.Products {
		err := registrar.AddProduct(p.ProductInfo())
		if err != nil {
			logger.Error("failed-to-add-product", err, lager.Data{"product": p.ID})
			errs = multierror.Append(errs, err)
		}
	}

	logger.Info("done")
	return errs.ErrorOrNil()
}

func (p ParticipantConfig) Participant() *participant.Participant {
	profile := participant.Profile{
		Address:     p.Address,
		Birthday:    p.Birthday,
		CompanyType: auctiontypes.CompanyType(p.CompanyType),
	}
	if p.SocialCapital != "" {
		profile.SocialCapital = decimal.RequireFromString(p.SocialCapital)
	}

	return participant.New(
		p.ID,
		p.Name,
		auctiontypes.ParticipantKind(p.Kind),
		participant.WithProfile(profile),
		participant.WithHistory(p.Wins, p.AuctionsInvolved),
	)
}
