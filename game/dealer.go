package game

// dealerStand is the score at which the dealer stops drawing, soft or hard.
const dealerStand = 17

// Dealer plays the house hand, keeping its hole card hidden until its turn
// starts.
type Dealer struct {
	handState
	cardShowing bool
}

func NewDealer() *Dealer { return &Dealer{} }

// ShouldHit reports whether the house rule forces another draw. The dealer
// stands on every 17, soft or hard.
func (d *Dealer) ShouldHit() bool { return d.score < dealerStand }

// Reveal turns the hole card face up at the start of the dealer's turn.
func (d *Dealer) Reveal() { d.cardShowing = true }

func (d *Dealer) Revealed() bool { return d.cardShowing }

// Clear empties the hand and hides the hole card again for the next round.
func (d *Dealer) Clear() {
	d.handState.Clear()
	d.cardShowing = false
}

// VisibleScore returns the true score once the hole card is showing,
// otherwise only the value of the up card.
func (d *Dealer) VisibleScore() int {
	if !d.cardShowing && len(d.cards) > 0 {
		return d.cards[0].Values()[0]
	}
	return d.score
}

// VisibleCards returns the cards the player is allowed to see.
func (d *Dealer) VisibleCards() []Card {
	if !d.cardShowing && len(d.cards) > 1 {
		return d.cards[:1]
	}
	return d.cards
}
