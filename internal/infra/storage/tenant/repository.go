package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingService/pkg/psqlbuilder"
)

const (
	tableName = "tenant_states"

	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// Repository хранит состояние студии целиком: JSONB payload + версия
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория состояний студий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get загружает состояние студии по ключу
// Если в контексте передана активная транзакция, строка блокируется (FOR UPDATE)
func (r *Repository) Get(ctx context.Context, tenantKey string) (*domain.TenantState, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSelectQuery(tenantKey, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		payload []byte
		version int64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payload, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		if isConcurrencyFailure(err) {
			return nil, fmt.Errorf("%w: Get - tenant=%s: %v", ErrVersionConflict, tenantKey, err)
		}
		return nil, fmt.Errorf("%w: Get - scan tenant=%s: %v", ErrScanRow, tenantKey, err)
	}

	return decodeState(tenantKey, payload, version)
}

// Create сохраняет новое состояние студии с версией 1
func (r *Repository) Create(ctx context.Context, state *domain.TenantState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	normalize(state)
	payload, err := encodeState(state)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("tenant_key", "payload", "version").
		Values(state.TenantKey, string(payload), 1).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrTenantAlreadyExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	state.Version = 1
	return nil
}

// Save перезаписывает состояние, если версия в БД совпадает с загруженной
// При успехе версия состояния увеличивается на 1
func (r *Repository) Save(ctx context.Context, state *domain.TenantState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := encodeState(state)
	if err != nil {
		return err
	}

	query, args, err := buildUpdateQuery(state.TenantKey, string(payload), state.Version)
	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isConcurrencyFailure(err) {
			return fmt.Errorf("%w: Save - tenant=%s: %v", ErrVersionConflict, state.TenantKey, err)
		}
		return fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, state.TenantKey)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTenantNotFound
		}
		return fmt.Errorf("%w: tenant=%s version=%d", ErrVersionConflict, state.TenantKey, state.Version)
	}

	state.Version++
	return nil
}

// ListKeys возвращает ключи всех студий
func (r *Repository) ListKeys(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("tenant_key").
		From(tableName).
		OrderBy("tenant_key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListKeys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListKeys - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: ListKeys - scan tenant_key: %v", ErrScanRow, err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListKeys - rows error: %v", ErrScanRow, err)
	}

	return keys, nil
}

func (r *Repository) exists(ctx context.Context, tenantKey string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"tenant_key": tenantKey}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

func buildSelectQuery(tenantKey string, forUpdate bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select("payload", "version").
		From(tableName).
		Where(squirrel.Eq{"tenant_key": tenantKey})

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

func buildUpdateQuery(tenantKey, payload string, version int64) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("payload", payload).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tenant_key": tenantKey, "version": version}).
		ToSql()
}

// isConcurrencyFailure сообщает, что Postgres прервал операцию из-за конкурентной транзакции
func isConcurrencyFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == serializationFailure || pqErr.Code == deadlockDetected
}
