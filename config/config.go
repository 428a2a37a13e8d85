package config

import (
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/eventsink"
	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddress = "0.0.0.0:9016"
	DefaultLogLevel      = "info"
	DefaultRedisChannel  = eventsink.DefaultRedisChannel
)

// AuctionHouseConfig is the on-disk configuration of an auction house daemon.
type AuctionHouseConfig struct {
	ListenAddress string          `yaml:"listen_address"`
	LogLevel      string          `yaml:"log_level"`
	Seed          int64           `yaml:"seed"`
	Events        EventsConfig    `yaml:"events"`
	Inventory     InventoryConfig `yaml:"inventory"`
}

type EventsConfig struct {
	Console bool         `yaml:"console"`
	Redis   *RedisConfig `yaml:"redis,omitempty"`
}

type RedisConfig struct {
	Address string `yaml:"address"`
	Channel string `yaml:"channel,omitempty"`
}

// InventoryConfig seeds a fresh house with brokers, participants and products.
type InventoryConfig struct {
	Brokers      []string            `yaml:"brokers"`
	Participants []ParticipantConfig `yaml:"participants"`
	Products     []ProductConfig     `yaml:"products"`
}

type ParticipantConfig struct {
	ID               int    `yaml:"id"`
	Name             string `yaml:"name"`
	Kind             string `yaml:"kind"`
	Address          string `yaml:"address,omitempty"`
	Birthday         string `yaml:"birthday,omitempty"`
	CompanyType      string `yaml:"company_type,omitempty"`
	SocialCapital    string `yaml:"social_capital,omitempty"`
	Wins             int    `yaml:"wins,omitempty"`
	AuctionsInvolved int    `yaml:"auctions_involved,omitempty"`
}

type ProductConfig struct {
	ID           int               `yaml:"id"`
	Name         string            `yaml:"name"`
	Category     string            `yaml:"category,omitempty"`
	Year         int               `yaml:"year,omitempty"`
	MinimumPrice string            `yaml:"minimum_price"`
	Attributes   map[string]string `yaml:"attributes,omitempty"`
}

func Default() AuctionHouseConfig {
	return AuctionHouseConfig{
		ListenAddress: DefaultListenAddress,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (AuctionHouseConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return AuctionHouseConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(payload)
}

func Parse(payload []byte) (AuctionHouseConfig, error) {
	cfg := Default()
	err := yaml.Unmarshal(payload, &cfg)
	if err != nil {
		return AuctionHouseConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Events.Redis != nil && cfg.Events.Redis.Channel == "" {
		cfg.Events.Redis.Channel = DefaultRedisChannel
	}

	err = cfg.Validate()
	if err != nil {
		return AuctionHouseConfig{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once rather than stopping at the first.
func (c AuctionHouseConfig) Validate() error {
	var errs *multierror.Error

	if c.ListenAddress == "" {
		errs = multierror.Append(errs, fmt.Errorf("listen_address is required"))
	}
	if _, err := c.MinLogLevel(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.Events.Redis != nil && c.Events.Redis.Address == "" {
		errs = multierror.Append(errs, fmt.Errorf("events.redis.address is required when redis is configured"))
	}

	brokers := map[string]bool{}
	for i, name := range c.Inventory.Brokers {
		if name == "" {
			errs = multierror.Append(errs, fmt.Errorf("inventory.brokers[%d]: name is required", i))
			continue
		}
		if brokers[name] {
			errs = multierror.Append(errs, fmt.Errorf("inventory.brokers[%d]: duplicate broker %q", i, name))
		}
		brokers[name] = true
	}

	participants := map[int]bool{}
	for i, p := range c.Inventory.Participants {
		if participants[p.ID] {
			errs = multierror.Append(errs, fmt.Errorf("inventory.participants[%d]: duplicate id %d", i, p.ID))
		}
		participants[p.ID] = true

		if p.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("inventory.participants[%d]: name is required", i))
		}
		if !auctiontypes.ParticipantKind(p.Kind).Valid() {
			errs = multierror.Append(errs, fmt.Errorf("inventory.participants[%d]: invalid kind %q", i, p.Kind))
		}
		if p.CompanyType != "" && p.CompanyType != string(auctiontypes.SRL) && p.CompanyType != string(auctiontypes.SA) {
			errs = multierror.Append(errs, fmt.Errorf("inventory.participants[%d]: invalid company_type %q", i, p.CompanyType))
		}
		if p.SocialCapital != "" {
			if _, err := decimal.NewFromString(p.SocialCapital); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("inventory.participants[%d]: invalid social_capital: %w", i, err))
			}
		}
	}

	products := map[int]bool{}
	for i, p := range c.Inventory.Products {
		if products[p.ID] {
			errs = multierror.Append(errs, fmt.Errorf("inventory.products[%d]: duplicate id %d", i, p.ID))
		}
		products[p.ID] = true

		switch auctiontypes.ProductCategory(p.Category) {
		case "", auctiontypes.Painting, auctiontypes.Jewelry, auctiontypes.Furniture:
		default:
			errs = multierror.Append(errs, fmt.Errorf("inventory.products[%d]: invalid category %q", i, p.Category))
		}
		if _, err := decimal.NewFromString(p.MinimumPrice); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("inventory.products[%d]: invalid minimum_price: %w", i, err))
		}
	}

	return errs.ErrorOrNil()
}

func (c AuctionHouseConfig) MinLogLevel() (lager.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return lager.DEBUG, nil
	case "info", "":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.INFO, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
}

func (p ProductConfig) ProductInfo() auctiontypes.ProductInfo {
	return auctiontypes.ProductInfo{
		ID:           p.ID,
		Name:         p.Name,
		Category:     auctiontypes.ProductCategory(p.Category),
		Year:         p.Year,
		MinimumPrice: decimal.RequireFromString(p.MinimumPrice),
		Attributes:   p.Attributes,
	}
}
