// Package game implements the blackjack round-resolution engine: hand
// scoring with Ace flexibility, split-hand handling, dealer automation and
// win/loss/push settlement.
//
// # Core Components
//
// Card and Shoe: immutable playing cards and the shuffleable multi-deck shoe
// they are drawn from. The shoe takes an explicit random source so tests can
// seed deterministic shuffles.
//
// Participant: the hand bookkeeping shared by the dealer and the player.
// Scores are recomputed eagerly on every mutation.
//
// Dealer: the fixed house policy. It hits below 17, stands on every 17 soft
// or hard, and keeps its hole card hidden until its turn starts.
//
// Player: the user's seat, holding balance, current bet and the FIFO queue of
// pending split hands. Bets commit atomically: validation and the balance
// debit happen in one step.
//
// Table: the round orchestrator. It sequences awaiting_bet, dealing,
// player_turn, split_resolution, dealer_turn and settlement, owning the shoe,
// both hands and the balance for the duration of a round.
//
// # I/O Boundary
//
// The engine performs no I/O itself. Decisions arrive through the Prompter
// interface and rendering goes through the Display interface; both block the
// round until the surrounding program answers.
package game
