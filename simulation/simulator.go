package simulation

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/auctionhouse/auctionhouse"
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/eventsink"
	"code.cloudfoundry.org/auctionhouse/util"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/workpool"
	"github.com/tedsuo/ifrit"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type Scenario struct {
	Auctions             int
	RequiredParticipants int
	MaxRounds            int
	MaxConcurrent        int

	// Overbook extra subscriptions are attempted per auction; they are
	// expected to be turned away once the auction is full.
	Overbook int

	// Lowball is the one-in-N chance an active bidder's first attempt is under
	// the minimum.
	Lowball int
}

var DefaultScenario = Scenario{
	Auctions:             10,
	RequiredParticipants: 5,
	MaxRounds:            5,
	MaxConcurrent:        4,
	Overbook:             2,
	Lowball:              4,
}

type Outcome struct {
	Scenario   Scenario
	Results    []auctiontypes.SaleResult
	Failures   []error
	TurnedAway int
	Tally      map[auctiontypes.EventType]int
	Brokers    []auctiontypes.BrokerInfo
	Duration   time.Duration
}

type Simulator struct {
	logger     lager.Logger
	clock      clock.Clock
	randomizer *util.LockedRand
	population Population
	sinks      []auctiontypes.EventSink
}

func New(logger lager.Logger, clock clock.Clock, randomizer *util.LockedRand, population Population, sinks ...auctiontypes.EventSink) *Simulator {
	return &Simulator{
		logger:     logger.Session("simulation"),
		clock:      clock,
		randomizer: randomizer,
		population: population,
		sinks:      sinks,
	}
}

func (s *Simulator) validate(scenario Scenario) error {
	switch {
	case scenario.Auctions < 1:
		return fmt.Errorf("%w: at least one auction is needed", ErrInvalidScenario)
	case scenario.Auctions > len(s.population.Inventory.Products):
		return fmt.Errorf("%w: %d auctions but only %d products", ErrInvalidScenario, scenario.Auctions, len(s.population.Inventory.Products))
	case scenario.RequiredParticipants > len(s.population.Inventory.Participants):
		return fmt.Errorf("%w: quorum of %d but only %d participants", ErrInvalidScenario, scenario.RequiredParticipants, len(s.population.Inventory.Participants))
	case len(s.population.Inventory.Brokers) == 0:
		return fmt.Errorf("%w: no brokers", ErrInvalidScenario)
	case scenario.MaxConcurrent < 1:
		return fmt.Errorf("%w: max concurrency must be positive", ErrInvalidScenario)
	}
	return nil
}

// Run stands up a fresh house for the population and drives the scenario's
// auctions through it, at most MaxConcurrent at a time.
func (s *Simulator) Run(scenario Scenario) (Outcome, error) {
	logger := s.logger.Session("run", lager.Data{"auctions": scenario.Auctions})

	err := s.validate(scenario)
	if err != nil {
		logger.Error("invalid-scenario", err)
		return Outcome{}, err
	}

	outcome := Outcome{Scenario: scenario}
	lock := &sync.Mutex{}

	channelSink := eventsink.NewChannelSink(1024)
	sinks := append(eventsink.Fanout{channelSink}, s.sinks...)

	house := auctionhouse.New(logger, s.clock, sinks, s.randomizer, auctionhouse.WithFatalHandler(func(err error) {
		logger.Error("invariant-violated", err)
		lock.Lock()
		outcome.Failures = append(outcome.Failures, err)
		lock.Unlock()
	}))

	err = s.population.Inventory.Populate(house, logger)
	if err != nil {
		return Outcome{}, err
	}

	bidders := NewActiveBidders(house, channelSink.Events(), s.population.Budgets, s.randomizer, scenario.Lowball, logger)
	process := ifrit.Invoke(bidders)
	stopBidders := func() {
		process.Signal(os.Interrupt)
		<-process.Wait()
	}

	auctionPool, err := workpool.NewWorkPool(scenario.MaxConcurrent)
	if err != nil {
		stopBidders()
		return Outcome{}, err
	}
	defer auctionPool.Stop()

	enrolPool, err := workpool.NewWorkPool(scenario.MaxConcurrent * (scenario.RequiredParticipants + scenario.Overbook))
	if err != nil {
		stopBidders()
		return Outcome{}, err
	}
	defer enrolPool.Stop()

	logger.Info("starting")
	startTime := s.clock.Now()

	wg := &sync.WaitGroup{}
	wg.Add(scenario.Auctions)
	for _, product := range s.population.Inventory.Products[:scenario.Auctions] {
		productID := product.ID
		auctionPool.Submit(func() {
			defer wg.Done()

			result, turnedAway, err := s.runAuction(logger, house, enrolPool, productID, scenario)

			lock.Lock()
			defer lock.Unlock()
			outcome.TurnedAway += turnedAway
			if err != nil {
				if !auctiontypes.IsInvariantViolation(err) {
					outcome.Failures = append(outcome.Failures, err)
				}
				return
			}
			outcome.Results = append(outcome.Results, result)
		})
	}
	wg.Wait()
	stopBidders()

	outcome.Duration = s.clock.Since(startTime)
	outcome.Tally = bidders.Tally()
	outcome.Brokers = house.Brokers()

	logger.Info("done", lager.Data{
		"results":  len(outcome.Results),
		"failures": len(outcome.Failures),
		"duration": outcome.Duration.String(),
	})
	return outcome, nil
}

func (s *Simulator) runAuction(logger lager.Logger, house *auctionhouse.House, enrolPool *workpool.WorkPool, productID int, scenario Scenario) (auctiontypes.SaleResult, int, error) {
	logger = logger.Session("auction", lager.Data{"product-id": productID})

	guid, err := house.CreateAuction(productID, scenario.RequiredParticipants, scenario.MaxRounds)
	if err != nil {
		logger.Error("failed-to-create", err)
		return auctiontypes.SaleResult{}, 0, err
	}

	auction, err := house.Lookup(guid)
	if err != nil {
		logger.Error("failed-to-lookup", err)
		return auctiontypes.SaleResult{}, 0, err
	}

	turnedAway := 0
	subscribeLock := &sync.Mutex{}
	ids := s.population.Pick(scenario.RequiredParticipants+scenario.Overbook, s.randomizer)

	wg := &sync.WaitGroup{}
	wg.Add(len(ids))
	for _, id := range ids {
		id := id
		enrolPool.Submit(func() {
			defer wg.Done()
			err := house.Subscribe(guid, id, s.population.Budgets[id], s.population.Active[id])
			if err == nil {
				return
			}
			if errors.Is(err, auctiontypes.ErrAuctionFull) {
				subscribeLock.Lock()
				turnedAway++
				subscribeLock.Unlock()
				return
			}
			logger.Error("failed-to-subscribe", err, lager.Data{"participant": id})
		})
	}
	wg.Wait()

	err = house.TriggerStart(guid)
	if err != nil {
		logger.Error("failed-to-trigger-start", err)
		return auctiontypes.SaleResult{}, turnedAway, err
	}

	<-auction.Done()
	result, err := auction.Result()
	return result, turnedAway, err
}
