package tenant

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

type memoryRecord struct {
	payload []byte
	version int64
}

// MemoryRepository in-memory хранилище состояний с той же семантикой версий, что и Repository
// Состояние хранится сериализованным, поэтому вызывающий код всегда получает копию
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]memoryRecord)}
}

// Get загружает копию состояния студии
func (m *MemoryRepository) Get(_ context.Context, tenantKey string) (*domain.TenantState, error) {
	m.mu.RLock()
	rec, ok := m.records[tenantKey]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrTenantNotFound
	}
	return decodeState(tenantKey, rec.payload, rec.version)
}

// Create сохраняет новое состояние студии с версией 1
func (m *MemoryRepository) Create(_ context.Context, state *domain.TenantState) error {
	normalize(state)
	payload, err := encodeState(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[state.TenantKey]; ok {
		return ErrTenantAlreadyExists
	}
	m.records[state.TenantKey] = memoryRecord{payload: payload, version: 1}
	state.Version = 1
	return nil
}

// Save перезаписывает состояние при совпадении версии
func (m *MemoryRepository) Save(_ context.Context, state *domain.TenantState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[state.TenantKey]
	if !ok {
		return ErrTenantNotFound
	}
	if rec.version != state.Version {
		return fmt.Errorf("%w: tenant=%s version=%d, stored=%d", ErrVersionConflict, state.TenantKey, state.Version, rec.version)
	}

	m.records[state.TenantKey] = memoryRecord{payload: payload, version: rec.version + 1}
	state.Version++
	return nil
}

// ListKeys возвращает ключи всех студий
func (m *MemoryRepository) ListKeys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.records))
	for key := range m.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// MemoryTxManager сериализует транзакции in-memory хранилища одним мьютексом
type MemoryTxManager struct {
	mu sync.Mutex
}

// NewMemoryTxManager создает менеджер транзакций для in-memory хранилища
func NewMemoryTxManager() *MemoryTxManager {
	return &MemoryTxManager{}
}

// Do выполняет fn под эксклюзивной блокировкой
// Откат не поддерживается: fn должна сохранять состояние последним шагом
func (t *MemoryTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
