package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/YDahdah/Nectar/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMemorySubscriberStore_AddAndCount(t *testing.T) {
	t.Parallel()

	store := repository.NewMemorySubscriberStore()
	ctx := context.Background()

	added, err := store.Add(ctx, "jane@example.com")
	require.NoError(t, err)
	require.True(t, added)

	added, err = store.Add(ctx, "jane@example.com")
	require.NoError(t, err)
	require.False(t, added)

	added, err = store.Add(ctx, "john@example.com")
	require.NoError(t, err)
	require.True(t, added)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestMemorySubscriberStore_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	store := repository.NewMemorySubscriberStore()
	ctx := context.Background()

	const workers = 16

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			for j := range 50 {
				if _, err := store.Add(ctx, fmt.Sprintf("user%d-%d@example.com", i, j)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, workers*50, count)
}
