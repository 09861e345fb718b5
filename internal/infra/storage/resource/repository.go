package resource

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

var resourceColumns = []string{
	"id",
	"title",
	"capacity",
	"pricing_period",
	"created_at",
	"updated_at",
}

// Repository репозиторий чтения бронируемых ресурсов
// Каталог ресурсов ведет внешняя система, сервис доступности его только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресурс по ID
// Отсутствующий ресурс - это ErrResourceNotFound, а не нулевая емкость
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает список ресурсов с фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.ResourcesFilter) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(resourceColumns...).
		From("resources").
		OrderBy("id ASC")

	if filter.OnlyBookable {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"capacity": 0})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		res, err := r.scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanResource(row rowScanner) (*domain.Resource, error) {
	var res domain.Resource
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Title,
		&res.Capacity,
		&res.PricingPeriod,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
