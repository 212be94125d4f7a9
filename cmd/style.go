package main

import (
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hand-analyzer/application"
	"github.com/luca-patrignani/hand-analyzer/domain/poker"
)

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()
	pterm.Println(banner)
}

// renderHands returns one line per hand, red suits coloured. With describe
// set, the evaluator's description of the hand follows on its own line.
func renderHands(a *application.Analyzer, logger *slog.Logger, hands []poker.Hand, describe bool) string {
	var sb strings.Builder
	for i, line := range a.FormatHands(hands) {
		sb.WriteString(colorSuits(line, hands[i]))
		sb.WriteString("\n")
		if !describe {
			continue
		}
		desc, err := hands[i].Describe()
		if err != nil {
			logger.Warn("could not describe hand", "hand", hands[i].String(), "error", err.Error())
			continue
		}
		sb.WriteString(pterm.Gray("    " + desc))
		sb.WriteString("\n")
	}
	return sb.String()
}

// colorSuits styles the card tokens of a formatted hand line. Padding is
// computed on the plain line, so columns stay aligned.
func colorSuits(line string, h poker.Hand) string {
	sep := strings.LastIndex(line, " - ")
	if sep < 0 {
		return line
	}
	cards, label := line[:sep], line[sep:]

	var sb strings.Builder
	pos := 0
	for _, c := range h.Cards() {
		token := c.String()
		idx := strings.Index(cards[pos:], token)
		if idx < 0 {
			// truncated column
			break
		}
		sb.WriteString(cards[pos : pos+idx])
		sb.WriteString(cardStyle(c, token))
		pos += idx + len(token)
	}
	sb.WriteString(cards[pos:])
	sb.WriteString(label)
	return sb.String()
}

func cardStyle(c poker.Card, token string) string {
	switch c.Suit() {
	case poker.Diamonds, poker.Hearts:
		return pterm.LightRed(token)
	default:
		return token
	}
}
