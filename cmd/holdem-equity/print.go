package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/simulator"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	playerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	rawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func printResults(w io.Writer, spot *simulator.Spot, results []simulator.Result, games uint64, elapsed time.Duration) {
	fmt.Fprintf(w, "%s\n%s\n\n", headerStyle.Render("spot"), spot)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("equity"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("wins"),
		headerStyle.Render("tie units"))

	for p, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			playerStyle.Render(fmt.Sprintf("%d", p+1)),
			winStyle.Render(fmt.Sprintf("%.2f%%", r.Equity(games)*100)),
			winStyle.Render(fmt.Sprintf("%.2f%%", r.WinRate(games)*100)),
			tieStyle.Render(fmt.Sprintf("%.2f%%", r.TieRate(games)*100)),
			rawStyle.Render(fmt.Sprintf("%d", r.Wins)),
			rawStyle.Render(fmt.Sprintf("%d", r.TieUnits)))
	}
	tw.Flush()

	rate := float64(games) / elapsed.Seconds()
	fmt.Fprintf(w, "\n%d games in %v (%.0f games/s)\n",
		games, elapsed.Truncate(time.Millisecond), rate)
}

func printBench(w io.Writer, report *bench.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("spot"),
		headerStyle.Render("games"),
		headerStyle.Render("elapsed"))
	for _, s := range report.Spots {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			playerStyle.Render(s.Spot),
			rawStyle.Render(fmt.Sprintf("%d", s.Games)),
			rawStyle.Render(s.Elapsed.Truncate(time.Millisecond).String()))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d games in %v (%.0f games/s)\n",
		report.TotalGames, report.Elapsed.Truncate(time.Millisecond), report.Rate())
	fmt.Fprintf(w, "signature %d\n", report.Signature)
}
