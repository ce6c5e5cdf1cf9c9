package game

// SplitHand is one queued (hand, bet) pair awaiting resolution after a split.
type SplitHand struct {
	Cards []Card
	Bet   float64
}

// Player is the user's seat at the table: hand, balance, current bet and any
// pending split hands.
type Player struct {
	handState
	username string
	balance  float64
	bet      float64
	minBet   float64
	splits   []SplitHand
}

func NewPlayer(username string, minBet float64) *Player {
	return &Player{username: username, minBet: minBet}
}

func (p *Player) Username() string { return p.username }

// SetUsername renames the player.
func (p *Player) SetUsername(name string) error {
	if name == "" {
		return ErrEmptyUsername
	}
	p.username = name
	return nil
}

func (p *Player) Balance() float64 { return p.balance }

func (p *Player) Bet() float64 { return p.bet }

// SetBalance replaces the balance. Zero and negative balances are
// unrepresentable through this path.
func (p *Player) SetBalance(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	p.balance = amount
	return nil
}

// AddFunds credits the balance.
func (p *Player) AddFunds(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	p.balance += amount
	return nil
}

// CommitBet validates the bet and debits the stake in a single step, so a
// recorded bet always has its stake already taken from the balance.
func (p *Player) CommitBet(amount float64) error {
	if amount < p.minBet {
		return ErrBetTooLow
	}
	if amount > p.balance {
		return ErrInsufficientFunds
	}
	p.bet = amount
	p.balance -= amount
	return nil
}

// SetBet rebinds the recorded bet without touching the balance, used when
// cycling through split hands whose stakes were debited at split time.
func (p *Player) SetBet(amount float64) { p.bet = amount }

// ResetBet clears the bet at the end of a round.
func (p *Player) ResetBet() { p.bet = 0 }

// DoubleDown debits the current bet a second time and doubles it.
func (p *Player) DoubleDown() error {
	if p.bet > p.balance {
		return ErrInsufficientFunds
	}
	p.balance -= p.bet
	p.bet *= 2
	return nil
}

// CanDouble reports whether doubling down is still on the table: an untouched
// two-card hand with enough balance to match the bet.
func (p *Player) CanDouble() bool {
	return len(p.cards) == 2 && p.balance >= p.bet
}

// CanSplit reports whether the hand is a splittable pair: exactly two cards
// of equal rank, with enough balance to fund the second hand.
func (p *Player) CanSplit() bool {
	return len(p.cards) == 2 &&
		p.cards[0].Rank() == p.cards[1].Rank() &&
		p.balance >= p.bet
}

// Split funds and queues two new hands from the current pair: each keeps one
// of the original cards plus one fresh draw, both staked at the current bet.
// The stake for the second hand is debited exactly once, here, and the
// emptied primary hand is cleared.
func (p *Player) Split(draw1, draw2 Card) error {
	if !p.CanSplit() {
		return ErrCannotSplit
	}
	first, second := p.cards[0], p.cards[1]
	p.splits = append(p.splits,
		SplitHand{Cards: []Card{first, draw1}, Bet: p.bet},
		SplitHand{Cards: []Card{second, draw2}, Bet: p.bet},
	)
	p.balance -= p.bet
	p.handState.Clear()
	return nil
}

// PopSplit removes and returns the oldest queued split hand.
func (p *Player) PopSplit() (SplitHand, bool) {
	if len(p.splits) == 0 {
		return SplitHand{}, false
	}
	h := p.splits[0]
	p.splits = p.splits[1:]
	return h, true
}

// PendingSplits reports how many split hands are still queued.
func (p *Player) PendingSplits() int { return len(p.splits) }

// ClearSplits drops any queued split hands when preparing a new round.
func (p *Player) ClearSplits() { p.splits = nil }

// credit pays winnings or refunds a stake during settlement.
func (p *Player) credit(amount float64) { p.balance += amount }
