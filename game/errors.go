package game

import "errors"

var (
	// ErrInvalidAmount rejects non-positive balance and funding amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrBetTooLow rejects bets under the table minimum.
	ErrBetTooLow = errors.New("bet below table minimum")

	// ErrInsufficientFunds rejects bets, doubles and splits the balance
	// cannot cover.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCannotSplit rejects splitting anything but an affordable pair.
	ErrCannotSplit = errors.New("hand cannot be split")

	// ErrEmptyUsername rejects blank usernames.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyShoe is returned when drawing from an exhausted shoe. The
	// reshuffle threshold keeps it out of reach during normal play, so a
	// surfaced ErrEmptyShoe is a programming error.
	ErrEmptyShoe = errors.New("shoe is empty")
)
