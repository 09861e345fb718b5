package allocation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/dbmetrics"
	"github.com/dmtrv/BRS-AvailabilityService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var allocationColumns = []string{
	"id",
	"resource_id",
	"start_at",
	"end_at",
	"quantity",
	"mode",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с ручными аллокациями емкости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аллокаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую аллокацию
func (r *Repository) Create(ctx context.Context, alloc *domain.Allocation) (*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("allocations").
		Columns(
			"resource_id",
			"start_at",
			"end_at",
			"quantity",
			"mode",
			"note",
		).
		Values(
			alloc.ResourceID,
			alloc.Window.Start,
			alloc.Window.End,
			alloc.Quantity,
			alloc.Mode,
			alloc.Note,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&alloc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	alloc.CreatedAt = createdAt.Time
	alloc.UpdatedAt = updatedAt.Time

	return alloc, nil
}

// GetByID получает аллокацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	alloc, err := r.scanAllocation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan allocation: %v", ErrScanRow, err)
	}

	return alloc, nil
}

// GetByResourceOverlapping получает аллокации ресурса, пересекающиеся с окном
// Грубый SQL-тест пересечения; точный тест движок применяет заново в памяти
func (r *Repository) GetByResourceOverlapping(ctx context.Context, resourceID int64, window domain.Window) ([]*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Lt{"start_at": window.End}).
		Where(squirrel.Gt{"end_at": window.Start}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAllocations(rows)
}

// GetByResource получает все аллокации ресурса
func (r *Repository) GetByResource(ctx context.Context, resourceID int64) ([]*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.Eq{"resource_id": resourceID}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAllocations(rows)
}

// Delete удаляет аллокацию
// Аллокации не зависят от бронирований, физическое удаление безопасно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("allocations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAllocationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAllocation(row rowScanner) (*domain.Allocation, error) {
	var alloc domain.Allocation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&alloc.ID,
		&alloc.ResourceID,
		&alloc.Window.Start,
		&alloc.Window.End,
		&alloc.Quantity,
		&alloc.Mode,
		&alloc.Note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	alloc.CreatedAt = createdAt.Time
	alloc.UpdatedAt = updatedAt.Time

	return &alloc, nil
}

func (r *Repository) scanAllocations(rows *sql.Rows) ([]*domain.Allocation, error) {
	allocations := make([]*domain.Allocation, 0)

	for rows.Next() {
		alloc, err := r.scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAllocations - scan row: %v", ErrScanRow, err)
		}
		allocations = append(allocations, alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAllocations - rows error: %v", ErrScanRow, err)
	}

	return allocations, nil
}
