package config_test

import (
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/auctionhouse/auctionhouse"
	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/auctiontypes/fakes"
	"code.cloudfoundry.org/auctionhouse/config"
	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

const validConfig = `
listen_address: 127.0.0.1:8080
log_level: debug
seed: 42
events:
  console: true
  redis:
    address: localhost:6379
inventory:
  brokers: [broker-1, broker-2]
  participants:
    - id: 1
      name: alice
      kind: individual
      address: 1 Main St
      birthday: "1990-04-01"
    - id: 2
      name: acme
      kind: organizational
      company_type: SRL
      social_capital: "250000.50"
      auctions_involved: 30
  products:
    - id: 10
      name: Water Lilies
      category: painting
      year: 1916
      minimum_price: "1000"
      attributes:
        artist: Monet
`

var _ = Describe("AuctionHouseConfig", func() {
	Describe("Parse", func() {
		It("parses a full config", func() {
			cfg, err := config.Parse([]byte(validConfig))
			Ω(err).ShouldNot(HaveOccurred())

			Ω(cfg.ListenAddress).Should(Equal("127.0.0.1:8080"))
			Ω(cfg.Seed).Should(BeEquivalentTo(42))
			Ω(cfg.Events.Console).Should(BeTrue())
			Ω(cfg.Events.Redis.Address).Should(Equal("localhost:6379"))
			Ω(cfg.Events.Redis.Channel).Should(Equal(config.DefaultRedisChannel))
			Ω(cfg.Inventory.Brokers).Should(Equal([]string{"broker-1", "broker-2"}))
			Ω(cfg.Inventory.Participants).Should(HaveLen(2))
			Ω(cfg.Inventory.Products[0].Attributes).Should(HaveKeyWithValue("artist", "Monet"))

			level, err := cfg.MinLogLevel()
			Ω(err).ShouldNot(HaveOccurred())
			Ω(level).Should(Equal(lager.DEBUG))
		})

		It("applies defaults", func() {
			cfg, err := config.Parse([]byte("{}"))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(cfg.ListenAddress).Should(Equal(config.DefaultListenAddress))
			Ω(cfg.LogLevel).Should(Equal(config.DefaultLogLevel))
			Ω(cfg.Events.Redis).Should(BeNil())
		})

		It("fails on malformed yaml", func() {
			_, err := config.Parse([]byte("listen_address: ["))
			Ω(err).Should(MatchError(ContainSubstring("failed to parse config")))
		})
	})

	Describe("Validate", func() {
		It("reports every problem at once", func() {
			_, err := config.Parse([]byte(`
listen_address: ""
log_level: loud
events:
  redis: {}
inventory:
  brokers: [b, b, ""]
  participants:
    - {id: 1, name: "", kind: robot}
    - {id: 1, name: bob, kind: organizational, company_type: LLC, social_capital: lots}
  products:
    - {id: 3, category: pottery, minimum_price: cheap}
    - {id: 3, minimum_price: "1"}
`))
			Ω(err).Should(HaveOccurred())

			merr, ok := err.(*multierror.Error)
			Ω(ok).Should(BeTrue())
			Ω(merr.Errors).Should(HaveLen(13))
			Ω(err.Error()).Should(ContainSubstring("listen_address is required"))
			Ω(err.Error()).Should(ContainSubstring(`invalid log_level "loud"`))
			Ω(err.Error()).Should(ContainSubstring("events.redis.address is required"))
			Ω(err.Error()).Should(ContainSubstring(`duplicate broker "b"`))
			Ω(err.Error()).Should(ContainSubstring("inventory.brokers[2]: name is required"))
			Ω(err.Error()).Should(ContainSubstring(`invalid kind "robot"`))
			Ω(err.Error()).Should(ContainSubstring(`invalid company_type "LLC"`))
			Ω(err.Error()).Should(ContainSubstring("invalid social_capital"))
			Ω(err.Error()).Should(ContainSubstring(`invalid category "pottery"`))
			Ω(err.Error()).Should(ContainSubstring("invalid minimum_price"))
			Ω(err.Error()).Should(ContainSubstring("inventory.products[1]: duplicate id 3"))
		})
	})

	Describe("MinLogLevel", func() {
		DescribeTable("known levels",
			func(level string, expected lager.LogLevel) {
				cfg := config.Default()
				cfg.LogLevel = level

				minLevel, err := cfg.MinLogLevel()
				Ω(err).ShouldNot(HaveOccurred())
				Ω(minLevel).Should(Equal(expected))
			},
			Entry("debug", "debug", lager.DEBUG),
			Entry("info", "info", lager.INFO),
			Entry("unset", "", lager.INFO),
			Entry("error in capitals", "ERROR", lager.ERROR),
			Entry("fatal", "fatal", lager.FATAL),
		)

		It("fails for anything else", func() {
			cfg := config.Default()
			cfg.LogLevel = "loud"

			_, err := cfg.MinLogLevel()
			Ω(err).Should(MatchError(`invalid log_level "loud"`))
		})
	})

	Describe("Load", func() {
		It("reads the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "auctionhouse.yml")
			Ω(os.WriteFile(path, []byte(validConfig), 0644)).Should(Succeed())

			cfg, err := config.Load(path)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(cfg.ListenAddress).Should(Equal("127.0.0.1:8080"))
		})

		It("fails when the file is missing", func() {
			_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "nope.yml"))
			Ω(err).Should(MatchError(ContainSubstring("failed to read config")))
		})
	})

	Describe("Populate", func() {
		var house *auctionhouse.House
		var logger *lagertest.TestLogger

		BeforeEach(func() {
			logger = lagertest.NewTestLogger("config")
			house = auctionhouse.New(logger, fakeclock.NewFakeClock(time.Now()), auctiontypes.NoopSink{}, &fakes.FakeRandomizer{})
		})

		It("registers brokers, participants and products", func() {
			cfg, err := config.Parse([]byte(validConfig))
			Ω(err).ShouldNot(HaveOccurred())

			Ω(cfg.Inventory.Populate(house, logger)).Should(Succeed())

			Ω(house.Brokers()).Should(HaveLen(2))

			participants := house.Participants()
			Ω(participants).Should(HaveLen(2))
			Ω(participants[0].Address).Should(Equal("1 Main St"))
			Ω(participants[1].Kind).Should(Equal(auctiontypes.Organizational))
			Ω(participants[1].CompanyType).Should(Equal(auctiontypes.SRL))
			Ω(participants[1].SocialCapital.Equal(decimal.RequireFromString("250000.5"))).Should(BeTrue())
			Ω(participants[1].AuctionsInvolved).Should(Equal(30))

			products := house.Products()
			Ω(products).Should(HaveLen(1))
			Ω(products[0].Category).Should(Equal(auctiontypes.Painting))
			Ω(products[0].MinimumPrice.Equal(decimal.NewFromInt(1000))).Should(BeTrue())
		})

		It("keeps going past entries the house refuses", func() {
			inventory := config.InventoryConfig{
				Brokers: []string{"broker-1"},
				Products: []config.ProductConfig{
					{ID: 1, MinimumPrice: "10"},
				},
			}
			Ω(inventory.Populate(house, logger)).Should(Succeed())

			inventory.Brokers = append(inventory.Brokers, "broker-2")
			inventory.Participants = []config.ParticipantConfig{{ID: 5, Name: "eve", Kind: "individual"}}

			err := inventory.Populate(house, logger)
			Ω(err).Should(MatchError(auctiontypes.ErrDuplicateBroker))
			Ω(err).Should(MatchError(auctiontypes.ErrDuplicateProduct))

			Ω(house.Brokers()).Should(HaveLen(2))
			Ω(house.Participants()).Should(HaveLen(1))
			Ω(logger).Should(gbytes.Say("failed-to-add-broker"))
		})
	})
})
