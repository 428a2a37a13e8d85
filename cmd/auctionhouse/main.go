package main

import (
	"flag"
	"os"

	"code.cloudfoundry.org/auctionhouse/auctionhouse"
	"code.cloudfoundry.org/auctionhouse/communication/http/auction_http_handlers"
	"code.cloudfoundry.org/auctionhouse/communication/http/routes"
	"code.cloudfoundry.org/auctionhouse/config"
	"code.cloudfoundry.org/auctionhouse/eventsink"
	"code.cloudfoundry.org/auctionhouse/util"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/redis/go-redis/v9"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"
	"github.com/tedsuo/rata"
)

var configPath = flag.String("config", "", "path to the auction house config file")
var listenAddress = flag.String("listenAddress", "", "host:port to serve the operator API on (overrides the config)")

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(err)
		}
	}
	if *listenAddress != "" {
		cfg.ListenAddress = *listenAddress
	}

	logger, reconfigurableSink := newLogger(cfg)
	logger.Info("starting", lager.Data{"listen-address": cfg.ListenAddress, "log-level": reconfigurableSink.GetMinLevel()})

	sinks := eventsink.Fanout{eventsink.NewLoggerSink(logger)}
	if cfg.Events.Console {
		sinks = append(sinks, eventsink.NewConsoleSink(os.Stdout))
	}

	var redisClient *redis.Client
	if cfg.Events.Redis != nil {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Events.Redis.Address})
		sinks = append(sinks, eventsink.NewRedisSink(redisClient, cfg.Events.Redis.Channel, logger))
	}

	house := auctionhouse.New(logger, clock.NewClock(), sinks, util.NewRandomizer(cfg.Seed))
	err := cfg.Inventory.Populate(house, logger)
	if err != nil {
		logger.Fatal("failed-to-populate-inventory", err)
	}

	handler, err := rata.NewRouter(routes.Routes, auction_http_handlers.New(house, logger))
	if err != nil {
		logger.Fatal("failed-to-build-router", err)
	}

	members := grouper.Members{
		{Name: "api", Runner: http_server.New(cfg.ListenAddress, handler)},
	}

	group := grouper.NewOrdered(os.Interrupt, members)
	monitor := ifrit.Invoke(sigmon.New(group))

	logger.Info("started")

	err = <-monitor.Wait()
	if redisClient != nil {
		redisClient.Close()
	}
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}

func newLogger(cfg config.AuctionHouseConfig) (lager.Logger, *lager.ReconfigurableSink) {
	minLevel, err := cfg.MinLogLevel()
	if err != nil {
		panic(err)
	}

	logger := lager.NewLogger("auctionhouse")
	sink := lager.NewReconfigurableSink(lager.NewWriterSink(os.Stdout, lager.DEBUG), minLevel)
	logger.RegisterSink(sink)
	return logger, sink
}
