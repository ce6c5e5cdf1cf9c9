package game

import "strconv"

// Suits in deck-building order.
var Suits = []string{"♠", "♥", "♣", "♦"}

// Ranks in deck-building order.
var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card is an immutable playing card.
type Card struct {
	rank string
	suit string
}

func NewCard(rank, suit string) Card {
	return Card{rank: rank, suit: suit}
}

func (c Card) Rank() string { return c.rank }

func (c Card) Suit() string { return c.suit }

// Code returns the rank+suit short form, e.g. "A♠" or "10♥".
func (c Card) Code() string { return c.rank + c.suit }

// Values returns the candidate blackjack values of the card. Face cards are
// worth 10; an Ace keeps both 1 and 11 until scoring resolves it.
func (c Card) Values() []int {
	switch c.rank {
	case "J", "Q", "K":
		return []int{10}
	case "A":
		return []int{1, 11}
	default:
		n, _ := strconv.Atoi(c.rank)
		return []int{n}
	}
}

func (c Card) IsAce() bool { return c.rank == "A" }

func (c Card) String() string { return c.Code() }

// NewDeck builds numDecks standard 52-card decks in fixed suit-major,
// rank-minor order.
func NewDeck(numDecks int) []Card {
	cards := make([]Card, 0, numDecks*52)
	for i := 0; i < numDecks; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				cards = append(cards, NewCard(rank, suit))
			}
		}
	}
	return cards
}
