package simulation

import (
	"fmt"
	"strconv"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/config"
	"code.cloudfoundry.org/auctionhouse/util"
)

type PopulationSize struct {
	Brokers      int
	Participants int
	Products     int

	MinBudget int
	MaxBudget int

	MinPrice int
	MaxPrice int
}

var DefaultPopulationSize = PopulationSize{
	Brokers:      4,
	Participants: 40,
	Products:     20,
	MinBudget:    500,
	MaxBudget:    5000,
	MinPrice:     100,
	MaxPrice:     2000,
}

// Population is a generated inventory plus the ceiling each participant bids
// up to in every auction it joins.
type Population struct {
	Inventory config.InventoryConfig
	Budgets   map[int]int
	Active    map[int]bool
}

var categories = []auctiontypes.ProductCategory{
	auctiontypes.Painting,
	auctiontypes.Jewelry,
	auctiontypes.Furniture,
}

// GeneratePopulation builds a reproducible population for a given seed.
// Roughly one participant in three bids actively.
func GeneratePopulation(size PopulationSize, randomizer *util.LockedRand, guids *util.GuidGenerator) Population {
	population := Population{
		Budgets: map[int]int{},
		Active:  map[int]bool{},
	}

	for i := 0; i < size.Brokers; i++ {
		population.Inventory.Brokers = append(population.Inventory.Brokers, guids.NewGuid("broker"))
	}

	for id := 1; id <= size.Participants; id++ {
		p := config.ParticipantConfig{
			ID:               id,
			AuctionsInvolved: randomizer.Intn(40),
			Address:          fmt.Sprintf("%d Auction Row", randomizer.IntIn(1, 999)),
		}
		if randomizer.Intn(2) == 0 {
			p.Name = guids.NewGuid("individual")
			p.Kind = string(auctiontypes.Individual)
			p.Birthday = fmt.Sprintf("19%02d-%02d-%02d", randomizer.IntIn(40, 99), randomizer.IntIn(1, 12), randomizer.IntIn(1, 28))
		} else {
			p.Name = guids.NewGuid("organization")
			p.Kind = string(auctiontypes.Organizational)
			p.CompanyType = string(auctiontypes.SRL)
			if randomizer.Intn(2) == 0 {
				p.CompanyType = string(auctiontypes.SA)
			}
			p.SocialCapital = strconv.Itoa(randomizer.IntIn(1000, 1000000))
		}

		population.Inventory.Participants = append(population.Inventory.Participants, p)
		population.Budgets[id] = randomizer.IntIn(size.MinBudget, size.MaxBudget)
		population.Active[id] = randomizer.Intn(3) == 0
	}

	for id := 1; id <= size.Products; id++ {
		category := categories[randomizer.Intn(len(categories))]
		population.Inventory.Products = append(population.Inventory.Products, config.ProductConfig{
			ID:           id,
			Name:         guids.NewGuid(string(category)),
			Category:     string(category),
			Year:         randomizer.IntIn(1700, 2020),
			MinimumPrice: strconv.Itoa(randomizer.IntIn(size.MinPrice, size.MaxPrice)),
		})
	}

	return population
}

// Pick returns n distinct participant ids in random order.
func (p Population) Pick(n int, randomizer auctiontypes.Randomizer) []int {
	ids := make([]int, 0, len(p.Inventory.Participants))
	for _, participant := range p.Inventory.Participants {
		ids = append(ids, participant.ID)
	}

	for i := len(ids) - 1; i > 0; i-- {
		j := randomizer.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}

	if n > len(ids) {
		n = len(ids)
	}
	return ids[:n]
}
