package visualization

import (
	"sort"
	"time"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/auctionhouse/simulation"
	"github.com/GaryBoone/GoStats/stats"
	"github.com/shopspring/decimal"
)

type Report struct {
	Scenario   simulation.Scenario
	Results    []auctiontypes.SaleResult
	Failures   []error
	TurnedAway int
	Tally      map[auctiontypes.EventType]int
	Brokers    []auctiontypes.BrokerInfo
	Duration   time.Duration
}

type Stat struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Total  float64
}

func NewStat(data []float64) Stat {
	if len(data) == 0 {
		return Stat{}
	}
	return Stat{
		Min:    stats.StatsMin(data),
		Max:    stats.StatsMax(data),
		Mean:   stats.StatsMean(data),
		StdDev: stats.StatsPopulationStandardDeviation(data),
		Total:  stats.StatsSum(data),
	}
}

func NewReport(outcome simulation.Outcome) *Report {
	results := make([]auctiontypes.SaleResult, len(outcome.Results))
	copy(results, outcome.Results)
	sort.Slice(results, func(i, j int) bool { return results[i].ProductID < results[j].ProductID })

	brokers := make([]auctiontypes.BrokerInfo, len(outcome.Brokers))
	copy(brokers, outcome.Brokers)
	sort.Slice(brokers, func(i, j int) bool { return brokers[i].Name < brokers[j].Name })

	return &Report{
		Scenario:   outcome.Scenario,
		Results:    results,
		Failures:   outcome.Failures,
		TurnedAway: outcome.TurnedAway,
		Tally:      outcome.Tally,
		Brokers:    brokers,
		Duration:   outcome.Duration,
	}
}

func (r *Report) AuctionsPerformed() int {
	return len(r.Results) + len(r.Failures)
}

func (r *Report) Sold() []auctiontypes.SaleResult {
	sold := []auctiontypes.SaleResult{}
	for _, result := range r.Results {
		if result.Sold {
			sold = append(sold, result)
		}
	}
	return sold
}

func (r *Report) NNoSales() int {
	return len(r.Results) - len(r.Sold())
}

// SellThrough is the fraction of completed auctions that ended in a sale.
func (r *Report) SellThrough() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(len(r.Sold())) / float64(len(r.Results))
}

func (r *Report) AuctionsPerSecond() float64 {
	if r.Duration == 0 {
		return 0
	}
	return float64(r.AuctionsPerformed()) / r.Duration.Seconds()
}

func (r *Report) WinningBidStats() Stat {
	return NewStat(r.WinningBids())
}

func (r *Report) WinningBids() []float64 {
	bids := []float64{}
	for _, result := range r.Sold() {
		bids = append(bids, float64(result.WinningBid))
	}
	return bids
}

func (r *Report) RoundStats() Stat {
	return NewStat(r.Rounds())
}

func (r *Report) Rounds() []float64 {
	rounds := []float64{}
	for _, result := range r.Results {
		rounds = append(rounds, float64(result.Rounds))
	}
	return rounds
}

func (r *Report) DurationStats() Stat {
	durations := []float64{}
	for _, result := range r.Results {
		durations = append(durations, result.Duration.Seconds())
	}
	return NewStat(durations)
}

func (r *Report) TotalCommission() decimal.Decimal {
	total := decimal.Zero
	for _, result := range r.Sold() {
		total = total.Add(result.Commission)
	}
	return total
}

func (r *Report) TotalNet() int {
	total := 0
	for _, result := range r.Sold() {
		total += result.NetAmount
	}
	return total
}

// Retries counts the active bids that came in under the minimum.
func (r *Report) Retries() int {
	return r.Tally[auctiontypes.BidRetry]
}
