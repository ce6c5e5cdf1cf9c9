package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"blackjack/game"
)

// termDisplay renders table snapshots with pterm. The dealer delay slows the
// reveal pacing down to something watchable; it plays no part in round logic.
type termDisplay struct {
	dealerDelay time.Duration
}

func (d *termDisplay) RenderTable(view game.TableView) {
	clearScreen()

	header := "YOUR TURN"
	if view.DealerRevealed {
		header = "DEALER'S TURN"
	}
	pterm.DefaultSection.Println(header)

	pterm.Println(pterm.LightYellow("Dealer's hand:"))
	pterm.Print(handArt(view.DealerCards, !view.DealerRevealed))
	pterm.Printfln("Score: %d", view.DealerScore)

	pterm.Println()
	pterm.Println(pterm.LightCyan("Your hand:"))
	pterm.Print(handArt(view.PlayerCards, false))
	pterm.Printfln("Score: %d", view.PlayerScore)
	pterm.Printfln("Current bet: €%.2f", view.Bet)
	pterm.Printfln("Balance: €%.2f", view.Balance)
	if view.SplitHand {
		pterm.Info.Printfln("Split hand with bet: €%.2f", view.Bet)
	}

	if view.DealerRevealed && d.dealerDelay > 0 {
		time.Sleep(d.dealerDelay)
	}
}

func (d *termDisplay) AnnounceOutcome(outcome game.Outcome, bet float64) {
	switch outcome {
	case game.OutcomeDealerBust:
		pterm.Success.Printfln("Dealer busts! You win €%.2f!", bet)
	case game.OutcomeWin:
		pterm.Success.Printfln("You win €%.2f!", bet)
	case game.OutcomePush:
		pterm.Info.Println("Push! Your stake is returned.")
	case game.OutcomeBust:
		pterm.Error.Println("Bust! You lose!")
	case game.OutcomeLoss:
		pterm.Error.Println("Dealer wins!")
	}
}

func (d *termDisplay) AnnounceShuffle() {
	spinner, _ := pterm.DefaultSpinner.Start("Dealer is shuffling a fresh shoe...")
	if d.dealerDelay > 0 {
		time.Sleep(d.dealerDelay)
	}
	spinner.Success("Fresh shoe ready")
}

func (d *termDisplay) AnnounceError(err error) {
	pterm.Error.Println(err.Error())
}

func clearScreen() {
	pterm.Print("\033[H\033[2J")
}

// cardArt draws one card as five lines of box art.
func cardArt(rank, suit string) []string {
	return []string{
		"┌─────────┐",
		fmt.Sprintf("│%-2s       │", rank),
		fmt.Sprintf("│    %s    │", suitColored(suit)),
		fmt.Sprintf("│       %2s│", rank),
		"└─────────┘",
	}
}

func suitColored(suit string) string {
	if suit == "♥" || suit == "♦" {
		return pterm.LightRed(suit)
	}
	return suit
}

// handArt lays a hand out side by side. With hole set, a face-down card is
// drawn after the up card the way the dealer's hidden hole card looks.
func handArt(cards []game.Card, hole bool) string {
	arts := make([][]string, 0, len(cards)+1)
	for _, c := range cards {
		arts = append(arts, cardArt(c.Rank(), c.Suit()))
	}
	if hole {
		arts = append(arts, cardArt("?", "?"))
	}

	var b strings.Builder
	for line := 0; line < 5; line++ {
		for _, art := range arts {
			b.WriteString(art[line])
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
