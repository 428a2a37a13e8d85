package visualization

import (
	"fmt"
	"io"
	"sort"

	"github.com/GaryBoone/GoStats/stats"
	svg "github.com/ajstarks/svgo"
)

const border = 5

const headerHeight = 100

const graphWidth = 300
const graphTextX = 70
const graphBinX = 75
const binHeight = 14
const binSpacing = 2
const maxBinLength = graphWidth - graphBinX

const ReportCardWidth = border*3 + graphWidth*2
const ReportCardHeight = border*3 + 260

type SVGReport struct {
	SVG         *svg.SVG
	sellThrough []float64
	commissions []float64
	durations   []float64
	width       int
	height      int
}

// StartSVGReport lays out a width by height grid of report cards.
func StartSVGReport(w io.Writer, width, height int) *SVGReport {
	s := svg.New(w)
	s.Start(width*ReportCardWidth, headerHeight+height*ReportCardHeight)
	return &SVGReport{
		SVG:    s,
		width:  width,
		height: height,
	}
}

func (r *SVGReport) Done() {
	r.drawResults()
	r.SVG.End()
}

func (r *SVGReport) DrawHeader(title string) {
	r.SVG.Text(border, 40, title, `text-anchor:start;font-size:32px;font-family:Helvetica Neue`)
}

func (r *SVGReport) drawResults() {
	if len(r.durations) == 0 {
		return
	}
	r.SVG.Text(border, 90, fmt.Sprintf("Sell-through: %.1f%% | Commission: %.2f | Time: %.2fs",
		stats.StatsMean(r.sellThrough)*100,
		stats.StatsSum(r.commissions),
		stats.StatsSum(r.durations),
	), `text-anchor:start;font-size:32px;font-family:Helvetica Neue`)
}

func (r *SVGReport) DrawReportCard(x, y int, report *Report) {
	r.SVG.Translate(x*ReportCardWidth, headerHeight+y*ReportCardHeight)

	bottom := r.drawRoundsHistogram(report)
	r.drawBidsHistogram(report, bottom+binSpacing*4)
	r.drawBrokers(report)
	r.drawText(report)

	commission, _ := report.TotalCommission().Float64()
	r.sellThrough = append(r.sellThrough, report.SellThrough())
	r.commissions = append(r.commissions, commission)
	r.durations = append(r.durations, report.Duration.Seconds())

	r.SVG.Gend()
}

func (r *SVGReport) drawRoundsHistogram(report *Report) int {
	rounds := report.Rounds()
	sort.Float64s(rounds)

	bins := binUp([]float64{0, 1, 2, 3, 4, 5, 10, 20, 1e9}, rounds)
	labels := []string{"1 round", "2 rounds", "3 rounds", "4 rounds", "5 rounds", "6-10", "11-20", ">20"}

	r.SVG.Translate(border, border)
	yBottom := r.drawHistogram(bins, labels)
	r.SVG.Gend()

	return yBottom + border
}

func (r *SVGReport) drawBidsHistogram(report *Report, y int) int {
	bids := report.WinningBids()
	sort.Float64s(bids)

	boundaries := []float64{0, 250, 500, 1000, 2000, 3000, 4000, 5000, 1e9}
	labels := []string{"<250", "250-500", "500-1k", "1k-2k", "2k-3k", "3k-4k", "4k-5k", ">5k"}
	bins := binUp(boundaries, bids)

	r.SVG.Translate(border, y)
	yBottom := r.drawHistogram(bins, labels)
	r.SVG.Gend()

	return yBottom + y
}

func (r *SVGReport) drawBrokers(report *Report) {
	maxBalance := 0.0
	for _, b := range report.Brokers {
		balance, _ := b.Balance.Float64()
		if balance > maxBalance {
			maxBalance = balance
		}
	}

	r.SVG.Translate(border*2+graphWidth, border)
	y := 0
	for _, b := range report.Brokers {
		balance, _ := b.Balance.Float64()
		r.SVG.Rect(graphBinX, y, maxBinLength, binHeight, `fill:#eee`)
		r.SVG.Text(graphTextX, y+binHeight-4, b.Name, `text-anchor:end;font-size:10px;font-family:Helvetica Neue`)
		if balance > 0 {
			r.SVG.Rect(graphBinX, y, int(balance/maxBalance*float64(maxBinLength)), binHeight, `fill:#2a7`)
			r.SVG.Text(graphBinX+binSpacing, y+binHeight-4, b.Balance.StringFixed(2), `text-anchor:start;font-size:10px;font-family:Helvetica Neue;fill:#fff`)
		}
		y += binHeight + binSpacing
	}
	r.SVG.Gend()
}

func (r *SVGReport) drawText(report *Report) {
	bidStats := report.WinningBidStats()
	roundStats := report.RoundStats()

	lines := []string{
		fmt.Sprintf("%d auctions, quorum %d, %d rounds max", report.AuctionsPerformed(), report.Scenario.RequiredParticipants, report.Scenario.MaxRounds),
		fmt.Sprintf("%d sold | %d unsold | %d failed", len(report.Sold()), report.NNoSales(), len(report.Failures)),
		fmt.Sprintf("%.2fs (%.2f a/s)", report.Duration.Seconds(), report.AuctionsPerSecond()),
	}
	statLines := []string{
		"Winning Bids",
		fmt.Sprintf("...%.0f ± %.0f", bidStats.Mean, bidStats.StdDev),
		fmt.Sprintf("...%.0f - %.0f", bidStats.Min, bidStats.Max),
		"Rounds",
		fmt.Sprintf("...%.2f ± %.2f", roundStats.Mean, roundStats.StdDev),
		fmt.Sprintf("...%d retries, %d turned away", report.Retries(), report.TurnedAway),
	}

	r.SVG.Translate(border*2+graphWidth, 120)
	r.SVG.Gstyle("font-family:Helvetica Neue")
	r.SVG.Textlines(8, 8, lines, 16, 18, "#333", "start")
	r.SVG.Textlines(8, 70, statLines, 13, 16, "#333", "start")
	r.SVG.Gend()
	r.SVG.Gend()
}

func (r *SVGReport) drawHistogram(bins []float64, labels []string) int {
	y := 0
	for i, percentage := range bins {
		r.SVG.Rect(graphBinX, y, maxBinLength, binHeight, `fill:#eee`)
		r.SVG.Text(graphTextX, y+binHeight-4, labels[i], `text-anchor:end;font-size:10px;font-family:Helvetica Neue`)
		if percentage > 0 {
			r.SVG.Rect(graphBinX, y, int(percentage*float64(maxBinLength)), binHeight, `fill:#333`)
			r.SVG.Text(graphBinX+binSpacing, y+binHeight-4, fmt.Sprintf("%.1f%%", percentage*100.0), `text-anchor:start;font-size:10px;font-family:Helvetica Neue;fill:#fff`)
		}
		y += binHeight + binSpacing
	}

	return y
}

// binUp turns sorted data into the fraction falling in each (lower, upper]
// bucket.
func binUp(binBoundaries []float64, sortedData []float64) []float64 {
	bins := make([]float64, len(binBoundaries)-1)
	if len(sortedData) == 0 {
		return bins
	}

	currentBin := 0
	for _, d := range sortedData {
		for currentBin < len(bins)-1 && binBoundaries[currentBin+1] < d {
			currentBin += 1
		}
		bins[currentBin] += 1
	}

	for i := range bins {
		bins[i] = (bins[i] / float64(len(sortedData)))
	}

	return bins
}
