package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/config"
)

func TestRoster(t *testing.T) {
	// Given: Configured players, one without a name
	players := []config.Player{
		{ID: "a", Name: "Alice", Sign: "A"},
		{ID: "b", Sign: "B"},
	}

	// When: Building the roster
	result := roster(players)

	// Then: Order is kept and the sign stands in for a missing name
	require.Len(t, result, 2)
	assert.Equal(t, "Alice", result[0].Name)
	assert.Equal(t, "b", result[1].ID)
	assert.Equal(t, "B", result[1].Name)
	assert.Zero(t, result[1].Wins)
}

func TestNewPlayerRepository(t *testing.T) {
	t.Run("Uses memory when Redis is disabled", func(t *testing.T) {
		// Given: A config with Redis disabled
		conf := &config.Config{}

		// When: Building the repository
		repo, closeRepo, err := newPlayerRepository(context.Background(), conf)

		// Then: A working in-memory repository is returned
		require.NoError(t, err)
		require.NoError(t, closeRepo())

		_, err = repo.GetByID(context.Background(), "nobody")
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})

	t.Run("Fails when Redis is unreachable", func(t *testing.T) {
		// Given: Redis enabled on a port nothing listens on
		conf := &config.Config{Redis: config.Redis{Enabled: true, Host: "127.0.0.1", Port: "1"}}

		// When: Building the repository
		_, _, err := newPlayerRepository(context.Background(), conf)

		// Then: The connection error is returned
		require.Error(t, err)
	})
}
