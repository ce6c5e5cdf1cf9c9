package game

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
)

// Phase names the stage a round is in.
type Phase string

const (
	PhaseAwaitingBet     Phase = "awaiting_bet"
	PhaseDealing         Phase = "dealing"
	PhasePlayerTurn      Phase = "player_turn"
	PhaseSplitResolution Phase = "split_resolution"
	PhaseDealerTurn      Phase = "dealer_turn"
	PhaseSettlement      Phase = "settlement"
	PhaseRoundComplete   Phase = "round_complete"
)

// Action is one in-round decision.
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
	ActionSplit  Action = "split"
)

// TurnResult tags how a player turn ended. Split hands that were split again
// are skipped by tag during resolution, never by inspecting the score.
type TurnResult int

const (
	TurnStood TurnResult = iota
	TurnBusted
	TurnDoubled
	TurnSplit
)

// Outcome is the settlement verdict for one hand.
type Outcome string

const (
	OutcomeWin        Outcome = "win"
	OutcomeDealerBust Outcome = "dealer_bust"
	OutcomeLoss       Outcome = "loss"
	OutcomeBust       Outcome = "bust"
	OutcomePush       Outcome = "push"
)

// TableView is the snapshot handed to the display on every refresh. Dealer
// cards and score are already masked per the visibility rule.
type TableView struct {
	DealerCards    []Card
	DealerScore    int
	DealerRevealed bool
	PlayerCards    []Card
	PlayerScore    int
	Bet            float64
	Balance        float64
	SplitHand      bool
}

// Prompter supplies the player's choices. Every call blocks until the player
// answers.
type Prompter interface {
	// BetAmount asks for the stake of the next hand.
	BetAmount(balance, minimum float64) float64
	// Decision picks one of the currently legal actions.
	Decision(legal []Action) Action
	// Pause waits for the player before moving on.
	Pause()
}

// Display renders table state without taking part in round logic.
type Display interface {
	RenderTable(view TableView)
	AnnounceOutcome(outcome Outcome, bet float64)
	AnnounceShuffle()
	AnnounceError(err error)
}

// Rules carries the table parameters a Table plays under.
type Rules struct {
	NumDecks         int
	MinBet           float64
	ShuffleThreshold int
}

// Table sequences rounds of blackjack: deal, player decisions, split
// resolution, dealer play and settlement. It exclusively owns the shoe, both
// hands and the balance while a round runs.
type Table struct {
	rules    Rules
	shoe     *Shoe
	dealer   *Dealer
	player   *Player
	prompter Prompter
	display  Display
	rng      *rand.Rand
	logger   *slog.Logger
	phase    Phase
}

func NewTable(rules Rules, player *Player, prompter Prompter, display Display, rng *rand.Rand, logger *slog.Logger) *Table {
	shoe := NewShoe(rules.NumDecks, rng)
	shoe.Shuffle()
	return &Table{
		rules:    rules,
		shoe:     shoe,
		dealer:   NewDealer(),
		player:   player,
		prompter: prompter,
		display:  display,
		rng:      rng,
		logger:   logger,
		phase:    PhaseAwaitingBet,
	}
}

func (t *Table) Phase() Phase { return t.phase }

func (t *Table) Player() *Player { return t.player }

func (t *Table) Dealer() *Dealer { return t.dealer }

// PlayRound runs one full round to completion. The only errors it returns
// come from an exhausted shoe, which the reshuffle threshold makes
// unreachable in normal play.
func (t *Table) PlayRound() error {
	log := t.logger.With("round", uuid.NewString())

	t.phase = PhaseAwaitingBet
	if t.shoe.Remaining() <= t.rules.ShuffleThreshold {
		t.display.AnnounceShuffle()
		t.shoe = NewShoe(t.rules.NumDecks, t.rng)
		t.shoe.Shuffle()
		log.Info("shoe rebuilt", "decks", t.rules.NumDecks, "cards", t.shoe.Remaining())
	}

	t.player.Clear()
	t.player.ClearSplits()
	t.player.ResetBet()
	t.dealer.Clear()

	t.placeBet(log)

	t.phase = PhaseDealing
	if err := t.deal(); err != nil {
		return err
	}
	t.refresh(false)

	t.phase = PhasePlayerTurn
	result, err := t.playerTurn()
	if err != nil {
		return err
	}

	switch {
	case result == TurnSplit:
		t.phase = PhaseSplitResolution
		if err := t.resolveSplits(log); err != nil {
			return err
		}
	case t.player.Score() > 21:
		t.display.AnnounceOutcome(OutcomeBust, t.player.Bet())
		log.Info("player busted", "score", t.player.Score(), "bet", t.player.Bet())
		t.prompter.Pause()
	default:
		t.prompter.Pause()
		if err := t.dealerTurn(); err != nil {
			return err
		}
		t.phase = PhaseSettlement
		t.settle(log, false)
		t.prompter.Pause()
	}

	t.player.ResetBet()
	t.phase = PhaseRoundComplete
	log.Info("round complete", "balance", t.player.Balance())
	return nil
}

// placeBet re-prompts until a bet commits; committing validates and debits in
// one step.
func (t *Table) placeBet(log *slog.Logger) {
	for {
		amount := t.prompter.BetAmount(t.player.Balance(), t.rules.MinBet)
		if err := t.player.CommitBet(amount); err != nil {
			t.display.AnnounceError(err)
			continue
		}
		log.Info("bet committed", "bet", amount, "balance", t.player.Balance())
		return
	}
}

// deal gives two cards each, alternating player then dealer.
func (t *Table) deal() error {
	for i := 0; i < 2; i++ {
		for _, p := range []Participant{t.player, t.dealer} {
			card, err := t.shoe.Draw()
			if err != nil {
				return err
			}
			p.Draw(card)
		}
	}
	return nil
}

// legalActions filters double and split down to an untouched two-card hand
// the balance can afford.
func (t *Table) legalActions() []Action {
	actions := []Action{ActionHit, ActionStand}
	if t.player.CanDouble() {
		actions = append(actions, ActionDouble)
	}
	if t.player.CanSplit() {
		actions = append(actions, ActionSplit)
	}
	return actions
}

// playerTurn runs the decision loop for the player's current hand and reports
// how it ended.
func (t *Table) playerTurn() (TurnResult, error) {
	for t.player.Score() < 21 {
		switch t.prompter.Decision(t.legalActions()) {
		case ActionHit:
			card, err := t.shoe.Draw()
			if err != nil {
				return TurnStood, err
			}
			t.player.Draw(card)
			t.refresh(false)
		case ActionDouble:
			if err := t.player.DoubleDown(); err != nil {
				t.display.AnnounceError(err)
				continue
			}
			card, err := t.shoe.Draw()
			if err != nil {
				return TurnStood, err
			}
			t.player.Draw(card)
			t.refresh(false)
			if t.player.Score() > 21 {
				return TurnBusted, nil
			}
			return TurnDoubled, nil
		case ActionSplit:
			if !t.player.CanSplit() {
				t.display.AnnounceError(ErrCannotSplit)
				continue
			}
			draw1, err := t.shoe.Draw()
			if err != nil {
				return TurnStood, err
			}
			draw2, err := t.shoe.Draw()
			if err != nil {
				return TurnStood, err
			}
			if err := t.player.Split(draw1, draw2); err != nil {
				t.display.AnnounceError(err)
				continue
			}
			return TurnSplit, nil
		case ActionStand:
			return TurnStood, nil
		}
	}
	if t.player.Score() > 21 {
		return TurnBusted, nil
	}
	return TurnStood, nil
}

// resolveSplits drains the split queue FIFO, replaying the player turn for
// each queued hand, then runs a single dealer turn that every surviving hand
// settles against. Hands that were split again enqueued their replacements
// and settle nothing themselves.
func (t *Table) resolveSplits(log *slog.Logger) error {
	var survivors []SplitHand
	for {
		hand, ok := t.player.PopSplit()
		if !ok {
			break
		}
		t.player.SetHand(hand.Cards)
		t.player.SetBet(hand.Bet)
		t.refresh(true)

		result, err := t.playerTurn()
		if err != nil {
			return err
		}
		switch result {
		case TurnSplit:
			continue
		case TurnBusted:
			t.display.AnnounceOutcome(OutcomeBust, t.player.Bet())
			log.Info("split hand busted", "score", t.player.Score(), "bet", t.player.Bet())
			t.prompter.Pause()
		default:
			survivors = append(survivors, SplitHand{Cards: t.player.Cards(), Bet: t.player.Bet()})
			t.prompter.Pause()
		}
	}

	if len(survivors) == 0 {
		return nil
	}
	if err := t.dealerTurn(); err != nil {
		return err
	}
	t.phase = PhaseSettlement
	for _, hand := range survivors {
		t.player.SetHand(hand.Cards)
		t.player.SetBet(hand.Bet)
		t.refresh(true)
		t.settle(log, true)
		t.prompter.Pause()
	}
	return nil
}

// dealerTurn reveals the hole card, then draws under the house rule with a
// display refresh after every card.
func (t *Table) dealerTurn() error {
	t.phase = PhaseDealerTurn
	t.dealer.Reveal()
	t.refresh(false)
	for t.dealer.ShouldHit() {
		card, err := t.shoe.Draw()
		if err != nil {
			return err
		}
		t.dealer.Draw(card)
		t.refresh(false)
	}
	return nil
}

// settle compares the dealer's final score against the player's current hand
// and adjusts the balance: twice the stake back on a win, the stake back on a
// push, nothing further on a loss.
func (t *Table) settle(log *slog.Logger, splitHand bool) {
	dealerScore := t.dealer.Score()
	playerScore := t.player.Score()
	bet := t.player.Bet()

	var outcome Outcome
	switch {
	case dealerScore > 21:
		outcome = OutcomeDealerBust
		t.player.credit(bet * 2)
	case dealerScore > playerScore:
		outcome = OutcomeLoss
	case dealerScore < playerScore:
		outcome = OutcomeWin
		t.player.credit(bet * 2)
	default:
		outcome = OutcomePush
		t.player.credit(bet)
	}
	t.display.AnnounceOutcome(outcome, bet)
	log.Info("hand settled",
		"outcome", string(outcome),
		"dealer", dealerScore,
		"player", playerScore,
		"bet", bet,
		"split", splitHand,
		"balance", t.player.Balance())
}

// refresh pushes a fresh table snapshot to the display.
func (t *Table) refresh(splitHand bool) {
	t.display.RenderTable(TableView{
		DealerCards:    t.dealer.VisibleCards(),
		DealerScore:    t.dealer.VisibleScore(),
		DealerRevealed: t.dealer.Revealed(),
		PlayerCards:    t.player.Cards(),
		PlayerScore:    t.player.Score(),
		Bet:            t.player.Bet(),
		Balance:        t.player.Balance(),
		SplitHand:      splitHand,
	})
}
