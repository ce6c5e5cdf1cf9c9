package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"blackjack/accounts"
	"blackjack/config"
	"blackjack/game"
)

// Main menu actions
const (
	menuPlay    = "play"
	menuAccount = "account"
	menuExit    = "exit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Route slog through the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)

	store := accounts.NewStore(cfg.AccountsDir)
	rec, err := login(store)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	player := game.NewPlayer(rec.Username, cfg.MinBet)
	if err := player.SetBalance(rec.Balance); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	password := rec.Password

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	display := &termDisplay{dealerDelay: time.Duration(cfg.DealerDelayMS) * time.Millisecond}
	table := game.NewTable(game.Rules{
		NumDecks:         cfg.Decks,
		MinBet:           cfg.MinBet,
		ShuffleThreshold: cfg.ShuffleThreshold,
	}, player, &termPrompter{}, display, rng, logger)

	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions([]string{menuPlay, menuAccount, menuExit}).
			WithDefaultText("Main menu").
			Show()
		switch choice {
		case menuPlay:
			if err := table.PlayRound(); err != nil {
				logger.Error("round aborted", "err", err.Error())
				os.Exit(1)
			}
		case menuAccount:
			if deleted := accountMenu(store, player, &password); deleted {
				pterm.Info.Println("Goodbye!")
				return
			}
		case menuExit:
			if err := store.Save(accounts.Record{
				Username: player.Username(),
				Password: password,
				Balance:  player.Balance(),
			}); err != nil {
				logger.Error("save on exit failed", "err", err.Error())
			} else {
				pterm.Info.Println("Your progress has been saved.")
			}
			pterm.Info.Printfln("Thanks for playing! Your final balance is: €%.2f", player.Balance())
			return
		}
	}
}

// login authenticates against the store, or falls through to registration
// when no matching account exists.
func login(store *accounts.Store) (accounts.Record, error) {
	username, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter your username").
		Show()
	password, _ := pterm.DefaultInteractiveTextInput.
		WithMask("*").
		WithDefaultText("Enter your password").
		Show()

	rec, err := store.Load(username, password)
	if err == nil {
		pterm.Success.Printfln("Welcome back, %s!", rec.Username)
		pterm.Info.Printfln("Your current balance is: €%.2f", rec.Balance)
		return rec, nil
	}
	if !errors.Is(err, accounts.ErrAuth) {
		return accounts.Record{}, err
	}
	pterm.Warning.Println("No matching account, let's register you.")
	return register(store, username, password)
}

func register(store *accounts.Store, username, password string) (accounts.Record, error) {
	for username == "" {
		username, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Pick a username").
			Show()
	}
	for password == "" {
		password, _ = pterm.DefaultInteractiveTextInput.
			WithMask("*").
			WithDefaultText("Pick a password").
			Show()
	}
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter your initial balance (€)").
			Show()
		balance, err := strconv.ParseFloat(raw, 64)
		if err != nil || balance <= 0 {
			pterm.Error.Println("Initial balance must be a positive number.")
			continue
		}
		rec := accounts.Record{Username: username, Password: password, Balance: balance}
		if err := store.Save(rec); err != nil {
			return accounts.Record{}, err
		}
		pterm.Success.Printfln("User %s registered successfully!", username)
		return rec, nil
	}
}
