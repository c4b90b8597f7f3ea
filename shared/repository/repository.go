package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"gymhub/infras/otel"
	"gymhub/infras/postgres"
	"gymhub/shared/constant"
	"gymhub/shared/dto"
	"gymhub/shared/logger"
	"gymhub/shared/timezone"
)

var errRequiredFilter = errors.New("required filter")

// Repository is the soft-delete aware CRUD store every domain repository
// embeds. Reads go to the read pool, writes to the write pool.
type Repository[T any] struct {
	db     *postgres.Connection
	otel   otel.Otel
	entity string
	table  Table
}

func NewRepository[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		db:     db,
		otel:   otl,
		entity: entityName,
		table:  Describe[T](tableName, primaryColumn),
	}
}

func (repo *Repository[T]) newScope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// get runs a single-row read into dest. A missing row leaves dest untouched.
func (repo *Repository[T]) get(ctx context.Context, scope otel.Scope, action, query string, args map[string]any, dest any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, dest, args); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return repo.fail(scope, action, err)
	}

	return nil
}

// Insert stores model and returns the generated primary key.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (int64, error) {
	ctx, scope := repo.newScope(ctx, "Insert")
	defer scope.End()

	query := repo.table.InsertSQL()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Write.NamedQueryContext(ctx, query, model)
	if err != nil {
		return 0, repo.fail(scope, "insert data", err)
	}
	defer rows.Close()

	var id int64

	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			return 0, repo.fail(scope, "scan inserted id", err)
		}
	}

	if err = rows.Err(); err != nil {
		return 0, repo.fail(scope, "insert data", err)
	}

	return id, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.newScope(ctx, "Exist")
	defer scope.End()

	where, args := Where(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table.Name, where)

	err := repo.get(ctx, scope, "check exist data", query, args, &exist)

	return exist, err
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.newScope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := Where(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s LIMIT 1", repo.table.SelectList(columns...), repo.table.Name, where)

	err := repo.get(ctx, scope, "get data", query, args, &model)

	return model, err
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.newScope(ctx, "GetAll")
	defer scope.End()

	where, args := Where(filter)

	var pagination string

	if params.Paginated() {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()
		pagination = "LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s",
		repo.table.SelectList(columns...), repo.table.Name, where, repo.table.OrderBy(params), pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.newScope(ctx, "Count")
	defer scope.End()

	var count int

	where, args := Where(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s", repo.table.Name, repo.table.Primary, repo.table.Name, where)

	err := repo.get(ctx, scope, "count data", query, args, &count)

	return count, err
}

func (repo *Repository[T]) Update(ctx context.Context, changes map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.newScope(ctx, "Update")
	defer scope.End()

	return repo.update(ctx, scope, changes, filter)
}

// Delete flags the matching rows as deleted. Rows are never physically removed.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup, modifiedBy string) error {
	ctx, scope := repo.newScope(ctx, "Delete")
	defer scope.End()

	changes := map[string]any{
		constant.FieldDeleted:    true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	return repo.update(ctx, scope, changes, filter)
}

func (repo *Repository[T]) update(ctx context.Context, scope otel.Scope, changes map[string]any, filter dto.FilterGroup) error {
	where, args := Where(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table.Name, SetList(changes, args), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}
