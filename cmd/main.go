package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-analyzer/application"
	"github.com/luca-patrignani/hand-analyzer/domain/poker"
)

const banner = "*** P O K E R H A N D A N A L Y Z E R ***"

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [test-deck-file]\n", os.Args[0])
		os.Exit(1)
	}

	// Log records go to stderr, the report to stdout.
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(os.Stderr))
	logger := slog.New(handler)

	analyzer, err := application.NewAnalyzer(application.NewConfig(application.WithLogger(logger)))
	if err != nil {
		logger.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	printBanner()

	var report application.Report
	if len(os.Args) == 2 {
		filename := os.Args[1]
		pterm.Info.Printfln("Using test deck %s", filename)
		hands, err := readHands(filename)
		if err != nil {
			logger.Error("could not read test deck", "file", filename, "error", err.Error())
			os.Exit(1)
		}
		report, err = analyzer.AnalyzeHands(hands)
		if err != nil {
			logger.Error("analysis failed", "error", err.Error())
			os.Exit(1)
		}
	} else {
		report, err = analyzer.Run()
		if err != nil {
			logger.Error("analysis failed", "error", err.Error())
			os.Exit(1)
		}
	}

	pterm.DefaultSection.Println("Dealing Hands")
	pterm.Print(renderHands(analyzer, logger, report.Dealt, false))

	pterm.DefaultSection.Println("Winning Hand Order")
	pterm.Print(renderHands(analyzer, logger, report.Ranked, true))
}

// readHands parses a test deck: one hand per line, e.g. "10H, JH, QH, KH, AH".
// Blank lines are skipped.
func readHands(filename string) ([][poker.HandSize]poker.Card, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var hands [][poker.HandSize]poker.Card
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cards, err := poker.ParseHand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		hands = append(hands, cards)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hands, nil
}
