package tenant

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

func TestMemoryRepository_CreateGetSave(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	state := domain.NewTenantState("carbon", "Carbon Detail")
	require.NoError(t, repo.Create(ctx, state))
	assert.Equal(t, int64(1), state.Version)

	loaded, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Version)
	assert.Equal(t, "Carbon Detail", loaded.Settings.BusinessName)
	assert.Len(t, loaded.Services, 4)

	loaded.Settings.BoxCapacity = 5
	require.NoError(t, repo.Save(ctx, loaded))
	assert.Equal(t, int64(2), loaded.Version)

	reloaded, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.Settings.BoxCapacity)
	assert.Equal(t, int64(2), reloaded.Version)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, domain.NewTenantState("carbon", "Carbon Detail")))

	first, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)
	first.Services[0].Price = 1

	second, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)
	assert.Equal(t, 60.0, second.Services[0].Price)
}

func TestMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrTenantNotFound)

	assert.ErrorIs(t, repo.Save(ctx, &domain.TenantState{TenantKey: "missing"}), ErrTenantNotFound)

	require.NoError(t, repo.Create(ctx, domain.NewTenantState("carbon", "Carbon")))
	assert.ErrorIs(t, repo.Create(ctx, domain.NewTenantState("carbon", "Other")), ErrTenantAlreadyExists)
}

func TestMemoryRepository_VersionConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, domain.NewTenantState("carbon", "Carbon")))

	operatorA, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)
	operatorB, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)

	operatorA.Settings.BoxCapacity = 4
	require.NoError(t, repo.Save(ctx, operatorA))

	operatorB.Settings.BoxCapacity = 6
	require.ErrorIs(t, repo.Save(ctx, operatorB), ErrVersionConflict)

	stored, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Settings.BoxCapacity)
}

func TestMemoryTxManager_SerializesReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	tx := NewMemoryTxManager()
	require.NoError(t, repo.Create(ctx, domain.NewTenantState("carbon", "Carbon")))

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := tx.Do(ctx, func(ctx context.Context) error {
				state, err := repo.Get(ctx, "carbon")
				if err != nil {
					return err
				}
				state.Settings.PatioCapacity++
				return repo.Save(ctx, state)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := repo.Get(ctx, "carbon")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPatioCapacity+workers, state.Settings.PatioCapacity)
	assert.Equal(t, int64(workers+1), state.Version)
}

func TestMemoryRepository_ListKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, domain.NewTenantState("zeta", "Z")))
	require.NoError(t, repo.Create(ctx, domain.NewTenantState("alpha", "A")))

	keys, err := repo.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, keys)
}
