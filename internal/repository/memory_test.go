package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-grid/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

func TestMemoryPlayerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a copy of the player", func(t *testing.T) {
		repo := NewMemoryPlayerRepository()
		player := &entity.Player{ID: "1", Name: "Alice", Sign: "X"}
		require.NoError(t, repo.CreateOrUpdate(ctx, player))

		// When: the caller keeps mutating its own value
		player.RecordWin()

		// Then: the stored value only changes on the next CreateOrUpdate
		stored, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Wins)

		require.NoError(t, repo.CreateOrUpdate(ctx, player))
		stored, err = repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Wins)
	})

	t.Run("Returns ErrPlayerNotFound for unknown ids", func(t *testing.T) {
		repo := NewMemoryPlayerRepository()

		player, err := repo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
		assert.Nil(t, player)
	})

	t.Run("Concurrent writes", func(t *testing.T) {
		repo := NewMemoryPlayerRepository()
		var wg sync.WaitGroup

		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = repo.CreateOrUpdate(ctx, &entity.Player{ID: "shared", Name: "Bob", Sign: "O"})
				_, _ = repo.GetByID(ctx, "shared")
			}()
		}
		wg.Wait()

		player, err := repo.GetByID(ctx, "shared")
		require.NoError(t, err)
		assert.Equal(t, "Bob", player.Name)
	})
}
