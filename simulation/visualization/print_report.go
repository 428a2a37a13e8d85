package visualization

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	boldStyle   = color.New(color.Bold)
	redColor    = color.New(color.FgHiRed)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	grayColor   = color.New(color.FgHiBlack)
	cyanColor   = color.New(color.FgCyan)
)

func PrintReport(w io.Writer, report *Report) {
	if report.AuctionsPerformed() == 0 {
		redColor.Fprintln(w, "Got no results!")
		return
	}

	boldStyle.Fprintf(w, "Finished %d Auctions (%d sold, %d unsold, %d failed) in %s\n",
		report.AuctionsPerformed(),
		len(report.Sold()),
		report.NNoSales(),
		len(report.Failures),
		report.Duration,
	)
	fmt.Fprintf(w, "%.2f auctions/s | sell-through %.1f%% | %d turned away at the door | %d bid retries\n",
		report.AuctionsPerSecond(),
		report.SellThrough()*100,
		report.TurnedAway,
		report.Retries(),
	)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sales")
	for _, result := range report.Results {
		if result.Sold {
			greenColor.Fprintf(w, "  %4d: %8d by %-6d via %-10s commission %10s over %d rounds\n",
				result.ProductID,
				result.WinningBid,
				result.WinnerID,
				result.BrokerName,
				result.Commission.StringFixed(2),
				result.Rounds,
			)
		} else {
			grayColor.Fprintf(w, "  %4d: no sale after %d rounds\n", result.ProductID, result.Rounds)
		}
	}
	for _, err := range report.Failures {
		redColor.Fprintf(w, "  !!!! %s\n", err)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Brokers")
	maxBalance := 0.0
	for _, b := range report.Brokers {
		balance, _ := b.Balance.Float64()
		if balance > maxBalance {
			maxBalance = balance
		}
	}
	for _, b := range report.Brokers {
		balance, _ := b.Balance.Float64()
		bar := 0
		if maxBalance > 0 {
			bar = int(40 * balance / maxBalance)
		}
		fmt.Fprintf(w, "  %12s: %s%s %s\n",
			b.Name,
			cyanColor.Sprint(strings.Repeat("+", bar)),
			grayColor.Sprint(strings.Repeat(".", 40-bar)),
			b.Balance.StringFixed(2),
		)
	}
	fmt.Fprintln(w)

	bids := report.WinningBidStats()
	rounds := report.RoundStats()
	durations := report.DurationStats()
	fmt.Fprintf(w, "%14s  Min: %12.0f | Max: %12.0f | Mean: %12.2f | Total: %12.0f\n", "Winning Bids:", bids.Min, bids.Max, bids.Mean, bids.Total)
	fmt.Fprintf(w, "%14s  Min: %12.0f | Max: %12.0f | Mean: %12.2f | Total: %12.0f\n", "Rounds:", rounds.Min, rounds.Max, rounds.Mean, rounds.Total)
	fmt.Fprintf(w, "%14s  Min: %12.3f | Max: %12.3f | Mean: %12.3f | StdDev: %11.3f\n", "Durations:", durations.Min, durations.Max, durations.Mean, durations.StdDev)
	yellowColor.Fprintf(w, "%14s  %s kept, %d paid out\n", "Commission:", report.TotalCommission().StringFixed(2), report.TotalNet())
}
