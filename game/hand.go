package game

// score computes the best blackjack total for the hand: the highest total not
// above 21 when one is achievable, otherwise the minimal busting total. Aces
// are resolved one at a time, each counting 11 unless that busts the running
// total.
func score(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		if c.IsAce() {
			aces++
			continue
		}
		total += c.Values()[0]
	}
	for i := 0; i < aces; i++ {
		if total+11 <= 21 {
			total += 11
		} else {
			total++
		}
	}
	return total
}

// handState is the hand bookkeeping shared by every participant. The score is
// recomputed eagerly on every mutation, never served stale.
type handState struct {
	cards []Card
	score int
}

// Draw adds a card to the hand.
func (h *handState) Draw(c Card) {
	h.cards = append(h.cards, c)
	h.score = score(h.cards)
}

// Clear empties the hand.
func (h *handState) Clear() {
	h.cards = nil
	h.score = 0
}

// SetHand replaces the whole hand, used when cycling through split hands.
func (h *handState) SetHand(cards []Card) {
	h.cards = cards
	h.score = score(cards)
}

func (h *handState) Cards() []Card { return h.cards }

func (h *handState) Score() int { return h.score }
