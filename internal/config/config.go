package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendHTTP    = "http"
	FrontendConsole = "console"
)

var (
	ErrUnknownFrontend  = errors.New("unknown frontend")
	ErrInvalidBoardSize = errors.New("board width and height must be at least 1")
	ErrDuplicatePlayer  = errors.New("duplicate player id")
	ErrEmptySign        = errors.New("player sign is empty")
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Frontend string   `yaml:"frontend" env:"FRONTEND" env-default:"http"`
	HTTPPort string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis    `yaml:"redis"`
	Board    Board    `yaml:"board"`
	Players  []Player `yaml:"players"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

const (
	defaultBoardWidth  = 3
	defaultBoardHeight = 3
)

// Board defaults are set in Load before reading, so an explicit 0 still reaches Validate.
type Board struct {
	Width  int `yaml:"width" env:"BOARD_WIDTH"`
	Height int `yaml:"height" env:"BOARD_HEIGHT"`
}

type Player struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Sign string `yaml:"sign"`
}

// DefaultPlayers is the roster used when config.yml lists none.
func DefaultPlayers() []Player {
	return []Player{
		{ID: "x", Name: "Player X", Sign: "X"},
		{ID: "o", Name: "Player O", Sign: "O"},
	}
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{
		Board: Board{Width: defaultBoardWidth, Height: defaultBoardHeight},
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if len(config.Players) == 0 {
		config.Players = DefaultPlayers()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendHTTP, FrontendConsole:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, that.Frontend)
	}

	if that.Board.Width < 1 || that.Board.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidBoardSize, that.Board.Width, that.Board.Height)
	}

	seen := make(map[string]struct{}, len(that.Players))
	for i, player := range that.Players {
		if player.Sign == "" {
			return fmt.Errorf("%w: player #%d", ErrEmptySign, i)
		}

		if player.ID == "" {
			continue
		}

		if _, ok := seen[player.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, player.ID)
		}
		seen[player.ID] = struct{}{}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
