package config

import "github.com/ilyakaznacheev/cleanenv"

// Config carries the table rules and presentation knobs, read from the
// environment with defaults matching a four-deck, five-minimum table.
type Config struct {
	Decks            int     `env:"BLACKJACK_DECKS" env-default:"4"`
	MinBet           float64 `env:"BLACKJACK_MIN_BET" env-default:"5"`
	ShuffleThreshold int     `env:"BLACKJACK_SHUFFLE_THRESHOLD" env-default:"52"`
	AccountsDir      string  `env:"BLACKJACK_ACCOUNTS_DIR" env-default:"players"`
	DealerDelayMS    int     `env:"BLACKJACK_DEALER_DELAY_MS" env-default:"1000"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
