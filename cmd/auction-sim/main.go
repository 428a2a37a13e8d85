package main

import (
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/eventsink"
	"code.cloudfoundry.org/auctionhouse/simulation"
	"code.cloudfoundry.org/auctionhouse/simulation/visualization"
	"code.cloudfoundry.org/auctionhouse/util"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

var seed = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
var runs = flag.Int("runs", 1, "number of simulation runs, each with its own population")
var auctions = flag.Int("auctions", simulation.DefaultScenario.Auctions, "auctions per run")
var requiredParticipants = flag.Int("requiredParticipants", simulation.DefaultScenario.RequiredParticipants, "quorum per auction")
var maxRounds = flag.Int("maxRounds", simulation.DefaultScenario.MaxRounds, "maximum bidding rounds per auction")
var maxConcurrent = flag.Int("maxConcurrent", simulation.DefaultScenario.MaxConcurrent, "auctions running at once")
var overbook = flag.Int("overbook", simulation.DefaultScenario.Overbook, "extra subscriptions attempted per auction")
var lowball = flag.Int("lowball", simulation.DefaultScenario.Lowball, "one in N active first bids is under the minimum (0 disables)")
var participants = flag.Int("participants", simulation.DefaultPopulationSize.Participants, "participants per population")
var brokers = flag.Int("brokers", simulation.DefaultPopulationSize.Brokers, "brokers per population")
var verbose = flag.Bool("verbose", false, "print every auction event")
var debug = flag.Bool("debug", false, "log at debug level")
var reportPath = flag.String("svgReport", "", "write an SVG report card per run to this path")

func main() {
	flag.Parse()

	logLevel := lager.ERROR
	if *debug {
		logLevel = lager.DEBUG
	}
	logger := lager.NewLogger("auction-sim")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, logLevel))

	scenario := simulation.Scenario{
		Auctions:             *auctions,
		RequiredParticipants: *requiredParticipants,
		MaxRounds:            *maxRounds,
		MaxConcurrent:        *maxConcurrent,
		Overbook:             *overbook,
		Lowball:              *lowball,
	}

	size := simulation.DefaultPopulationSize
	size.Participants = *participants
	size.Brokers = *brokers
	if size.Products < scenario.Auctions {
		size.Products = scenario.Auctions
	}

	sinks := []auctiontypes.EventSink{}
	if *verbose {
		sinks = append(sinks, eventsink.NewConsoleSink(os.Stdout))
	}

	var svgReport *visualization.SVGReport
	if *reportPath != "" {
		f, err := os.Create(*reportPath)
		if err != nil {
			logger.Fatal("failed-to-create-report", err)
		}
		defer f.Close()

		svgReport = visualization.StartSVGReport(f, *runs, 1)
		svgReport.DrawHeader(fmt.Sprintf("%d runs of %d auctions - quorum %d - %d rounds max", *runs, scenario.Auctions, scenario.RequiredParticipants, scenario.MaxRounds))
	}

	randomizer := util.NewRandomizer(*seed)
	guids := util.NewGuidGenerator()

	for i := 0; i < *runs; i++ {
		guids.Reset()
		population := simulation.GeneratePopulation(size, randomizer, guids)

		outcome, err := simulation.New(logger, clock.NewClock(), randomizer, population, sinks...).Run(scenario)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		report := visualization.NewReport(outcome)
		visualization.PrintReport(os.Stdout, report)
		fmt.Println()

		if svgReport != nil {
			svgReport.DrawReportCard(i, 0, report)
		}
	}

	if svgReport != nil {
		svgReport.Done()
	}
}
