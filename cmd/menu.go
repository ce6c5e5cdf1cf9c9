package main

import (
	"errors"
	"strconv"

	"github.com/pterm/pterm"

	"blackjack/accounts"
	"blackjack/game"
)

// Account menu actions
const (
	accountAddFunds = "add funds"
	accountDelete   = "delete account"
	accountPassword = "change password"
	accountUsername = "change username"
	accountBalance  = "view balance"
	accountBack     = "back"
)

// termPrompter collects the player's in-round choices interactively.
type termPrompter struct{}

func (p *termPrompter) BetAmount(balance, minimum float64) float64 {
	for {
		pterm.Printfln("Your balance: €%.2f", balance)
		pterm.Printfln("Minimum bet: €%.2f", minimum)
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter your bet amount (€)").
			Show()
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			pterm.Error.Println("Invalid input, please enter a number.")
			continue
		}
		return amount
	}
}

func (p *termPrompter) Decision(legal []game.Action) game.Action {
	options := make([]string, len(legal))
	for i, a := range legal {
		options[i] = string(a)
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Your action").
		Show()
	return game.Action(choice)
}

func (p *termPrompter) Pause() {
	pterm.DefaultInteractiveTextInput.
		WithDefaultText("Press Enter to continue").
		Show()
}

// accountMenu runs the account management loop. It reports true when the
// account was deleted and the session must end.
func accountMenu(store *accounts.Store, player *game.Player, password *string) bool {
	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions([]string{
				accountAddFunds,
				accountDelete,
				accountPassword,
				accountUsername,
				accountBalance,
				accountBack,
			}).
			WithDefaultText("Account menu").
			Show()

		switch choice {
		case accountAddFunds:
			addFunds(player)
		case accountDelete:
			if deleteAccount(store, player) {
				return true
			}
		case accountPassword:
			changePassword(store, player, password)
		case accountUsername:
			changeUsername(store, player, *password)
		case accountBalance:
			pterm.Info.Printfln("Current balance: €%.2f", player.Balance())
		case accountBack:
			return false
		}
	}
}

func addFunds(player *game.Player) {
	raw, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter amount to add (€)").
		Show()
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		pterm.Error.Println("Invalid input, please enter a number.")
		return
	}
	if err := player.AddFunds(amount); err != nil {
		pterm.Error.Println("Amount must be positive.")
		return
	}
	pterm.Success.Printfln("Funds added! New balance: €%.2f", player.Balance())
}

func deleteAccount(store *accounts.Store, player *game.Player) bool {
	confirmed, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Are you sure you want to delete your account?").
		Show()
	if !confirmed {
		pterm.Info.Println("Account deletion cancelled.")
		return false
	}
	removed, err := store.Delete(player.Username())
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	if !removed {
		pterm.Warning.Println("Account not found.")
		return false
	}
	pterm.Success.Println("Account deleted successfully!")
	return true
}

func changePassword(store *accounts.Store, player *game.Player, password *string) {
	current, _ := pterm.DefaultInteractiveTextInput.
		WithMask("*").
		WithDefaultText("Enter current password").
		Show()
	if current != *password {
		pterm.Error.Println("Incorrect current password!")
		return
	}
	next, _ := pterm.DefaultInteractiveTextInput.
		WithMask("*").
		WithDefaultText("Enter new password").
		Show()
	if next == "" {
		pterm.Error.Println("Password cannot be empty!")
		return
	}
	if err := store.Save(accounts.Record{
		Username: player.Username(),
		Password: next,
		Balance:  player.Balance(),
	}); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	*password = next
	pterm.Success.Println("Password changed successfully!")
}

func changeUsername(store *accounts.Store, player *game.Player, password string) {
	next, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter new username").
		Show()
	if next == "" {
		pterm.Error.Println("Username cannot be empty!")
		return
	}
	// Persist the current state first so the moved record is fresh.
	if err := store.Save(accounts.Record{
		Username: player.Username(),
		Password: password,
		Balance:  player.Balance(),
	}); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if err := store.Rename(player.Username(), next); err != nil {
		if errors.Is(err, accounts.ErrNameTaken) {
			pterm.Error.Println("Username already taken!")
		} else {
			pterm.Error.Println(err.Error())
		}
		return
	}
	if err := player.SetUsername(next); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Success.Println("Username changed successfully!")
}
