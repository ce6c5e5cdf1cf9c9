package game

import "math/rand"

// Shoe is the live collection of cards being drawn from during play. The
// random source is explicit so tests can seed deterministic shuffles.
type Shoe struct {
	cards    []Card
	numDecks int
	rng      *rand.Rand
}

// NewShoe builds an unshuffled shoe of numDecks standard decks.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	return &Shoe{
		cards:    NewDeck(numDecks),
		numDecks: numDecks,
		rng:      rng,
	}
}

// Shuffle applies a uniform random permutation to the remaining cards.
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the front card. A drawn card never goes back into
// the shoe.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining reports how many cards are left.
func (s *Shoe) Remaining() int { return len(s.cards) }
