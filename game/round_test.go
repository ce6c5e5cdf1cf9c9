package game

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
)

// scriptPrompter feeds pre-scripted bets and actions to the table. It stands
// when the script runs out, so settlement-only tests need no actions at all.
type scriptPrompter struct {
	t       *testing.T
	bets    []float64
	actions []Action
}

func (p *scriptPrompter) BetAmount(balance, minimum float64) float64 {
	if len(p.bets) == 0 {
		p.t.Fatal("no scripted bets left")
	}
	bet := p.bets[0]
	p.bets = p.bets[1:]
	return bet
}

func (p *scriptPrompter) Decision(legal []Action) Action {
	if len(p.actions) == 0 {
		return ActionStand
	}
	action := p.actions[0]
	p.actions = p.actions[1:]
	for _, l := range legal {
		if l == action {
			return action
		}
	}
	p.t.Fatalf("scripted action %s not legal in %v", action, legal)
	return ActionStand
}

func (p *scriptPrompter) Pause() {}

// recordDisplay captures what the table announced.
type recordDisplay struct {
	outcomes []Outcome
	shuffles int
	errs     []error
}

func (d *recordDisplay) RenderTable(TableView) {}

func (d *recordDisplay) AnnounceOutcome(outcome Outcome, bet float64) {
	d.outcomes = append(d.outcomes, outcome)
}

func (d *recordDisplay) AnnounceShuffle() { d.shuffles++ }

func (d *recordDisplay) AnnounceError(err error) { d.errs = append(d.errs, err) }

// newTestTable rigs the shoe so every draw is known in advance. The zero
// shuffle threshold keeps the rigged shoe from being rebuilt at round start.
func newTestTable(t *testing.T, balance float64, shoeCards []Card, prompter *scriptPrompter, display *recordDisplay) *Table {
	t.Helper()
	player := NewPlayer("tester", 5)
	if err := player.SetBalance(balance); err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	table := NewTable(Rules{NumDecks: 1, MinBet: 5, ShuffleThreshold: 0},
		player, prompter, display, rand.New(rand.NewSource(1)), logger)
	table.shoe = &Shoe{cards: shoeCards, numDecks: 1}
	return table
}

func TestRoundPlayerWins(t *testing.T) {
	// deal order: player, dealer, player, dealer
	shoe := cards("A♠", "10♠", "K♥", "9♥") // player 21 vs dealer 19
	prompter := &scriptPrompter{t: t, bets: []float64{100}}
	display := &recordDisplay{}
	table := newTestTable(t, 1000, shoe, prompter, display)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	if got := table.Player().Balance(); got != 1100 {
		t.Fatalf("expected balance 1100, got %v", got)
	}
	if len(display.outcomes) != 1 || display.outcomes[0] != OutcomeWin {
		t.Fatalf("expected single win, got %v", display.outcomes)
	}
	if table.Phase() != PhaseRoundComplete {
		t.Fatalf("expected round complete, got %s", table.Phase())
	}
	if table.Player().Bet() != 0 {
		t.Fatal("expected bet reset after round")
	}
}

func TestRoundPush(t *testing.T) {
	shoe := cards("10♠", "K♠", "10♥", "10♦") // 20 vs 20
	prompter := &scriptPrompter{t: t, bets: []float64{100}, actions: []Action{ActionStand}}
	display := &recordDisplay{}
	table := newTestTable(t, 1000, shoe, prompter, display)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	if got := table.Player().Balance(); got != 1000 {
		t.Fatalf("expected stake returned on push, balance %v", got)
	}
	if len(display.outcomes) != 1 || display.outcomes[0] != OutcomePush {
		t.Fatalf("expected push, got %v", display.outcomes)
	}
}

func TestRoundPlayerBustSkipsDealer(t *testing.T) {
	// player 10+9, hits into a 10 and busts; dealer sits on 14 and must not
	// play: the shoe holds no further cards, so a dealer draw would error.
	shoe := cards("10♠", "5♠", "9♥", "9♠", "10♦")
	prompter := &scriptPrompter{t: t, bets: []float64{100}, actions: []Action{ActionHit}}
	display := &recordDisplay{}
	table := newTestTable(t, 1000, shoe, prompter, display)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	if got := table.Player().Balance(); got != 900 {
		t.Fatalf("expected stake lost, balance %v", got)
	}
	if len(display.outcomes) != 1 || display.outcomes[0] != OutcomeBust {
		t.Fatalf("expected bust, got %v", display.outcomes)
	}
	if len(table.Dealer().Cards()) != 2 {
		t.Fatalf("dealer must not draw after player bust, has %d cards", len(table.Dealer().Cards()))
	}
	if table.Dealer().Revealed() {
		t.Fatal("dealer hole card must stay hidden after player bust")
	}
}

func TestRoundDoubleDown(t *testing.T) {
	shoe := cards("5♠", "10♠", "6♠", "7♠", "10♥") // player 11 vs dealer 17
	prompter := &scriptPrompter{t: t, bets: []float64{100}, actions: []Action{ActionDouble}}
	display := &recordDisplay{}
	table := newTestTable(t, 1000, shoe, prompter, display)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	// 100 committed, 100 more on the double, 400 back on the 21-vs-17 win.
	if got := table.Player().Balance(); got != 1200 {
		t.Fatalf("expected balance 1200, got %v", got)
	}
	if len(display.outcomes) != 1 || display.outcomes[0] != OutcomeWin {
		t.Fatalf("expected win, got %v", display.outcomes)
	}
}

func TestRoundSplitFlow(t *testing.T) {
	// pair of tens split into [10♠ 5♥] and [10♥ 9♥]; dealer 14 draws into 24.
	shoe := cards("10♠", "5♠", "10♥", "9♠", "5♥", "9♥", "10♣")
	prompter := &scriptPrompter{t: t,
		bets:    []float64{100},
		actions: []Action{ActionSplit, ActionStand, ActionStand},
	}
	display := &recordDisplay{}
	table := newTestTable(t, 1000, shoe, prompter, display)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	// 200 staked across both hands, both win 200 against the busted dealer.
	if got := table.Player().Balance(); got != 1200 {
		t.Fatalf("expected balance 1200, got %v", got)
	}
	if table.Player().PendingSplits() != 0 {
		t.Fatalf("expected drained split queue, %d left", table.Player().PendingSplits())
	}
	if len(display.outcomes) != 2 {
		t.Fatalf("expected two settlements, got %v", display.outcomes)
	}
	for _, outcome := range display.outcomes {
		if outcome != OutcomeDealerBust {
			t.Fatalf("expected dealer bust for both hands, got %v", display.outcomes)
		}
	}
}

func TestRoundResplit(t *testing.T) {
	// The first split hand draws another ten and is split again. The shell it
	// leaves behind settles nothing; three hands survive.
	shoe := cards("10♠", "5♠", "10♥", "9♠", "10♣", "5♥", "4♦", "6♦", "K♦")
	prompter := &scriptPrompter{t: t,
		bets:    []float64{100},
		actions: []Action{ActionSplit, ActionSplit, ActionStand, ActionStand, ActionStand},
	}
	display := &recordDisplay{}
	table := newTestTable(t, 1000, shoe, prompter, display)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	// 300 staked across three hands, dealer busts on 14+K, 600 back.
	if got := table.Player().Balance(); got != 1300 {
		t.Fatalf("expected balance 1300, got %v", got)
	}
	if table.Player().PendingSplits() != 0 {
		t.Fatalf("expected drained split queue, %d left", table.Player().PendingSplits())
	}
	if len(display.outcomes) != 3 {
		t.Fatalf("expected three settlements, got %v", display.outcomes)
	}
}

func TestRoundRejectedBetsAreRetried(t *testing.T) {
	shoe := cards("10♠", "K♠", "10♥", "10♦")
	prompter := &scriptPrompter{t: t, bets: []float64{2, 5000, 100}}
	display := &recordDisplay{}
	table := newTestTable(t, 1000, shoe, prompter, display)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	if len(display.errs) != 2 {
		t.Fatalf("expected two rejected bets, got %v", display.errs)
	}
	if got := table.Player().Balance(); got != 1000 {
		t.Fatalf("expected push on the committed 100, balance %v", got)
	}
}

func TestReshuffleAtThreshold(t *testing.T) {
	player := NewPlayer("tester", 5)
	if err := player.SetBalance(1000); err != nil {
		t.Fatal(err)
	}
	prompter := &scriptPrompter{t: t, bets: []float64{100}}
	display := &recordDisplay{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// A single-deck shoe sits exactly at the threshold, so the round starts
	// by building a fresh shoe.
	table := NewTable(Rules{NumDecks: 1, MinBet: 5, ShuffleThreshold: 52},
		player, prompter, display, rand.New(rand.NewSource(3)), logger)

	if err := table.PlayRound(); err != nil {
		t.Fatal(err)
	}
	if display.shuffles != 1 {
		t.Fatalf("expected one reshuffle, got %d", display.shuffles)
	}
	if table.shoe.Remaining() >= 52 {
		t.Fatalf("expected cards drawn from the fresh shoe, %d remaining", table.shoe.Remaining())
	}
}
