package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"todoapi/infras/otel"
	"todoapi/infras/postgres"
	"todoapi/internal/domains/todo/model"
	"todoapi/shared/constant"
	"todoapi/shared/logger"
)

// ErrStore marks every failure that originated in the database or on the way
// to it. Callers match it with errors.Is; the driver error stays wrapped.
var ErrStore = errors.New("store error")

var columns = strings.Join([]string{model.FieldID, model.FieldTitle, model.FieldCompleted}, ", ")

// Todo is the data access for the todos table. Lookups by id return a nil
// model, not an error, when no row matches.
type Todo interface {
	Insert(ctx context.Context, title string) (model.Todo, error)
	GetAll(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id int) (*model.Todo, error)
	UpdateTitle(ctx context.Context, id int, title string) (*model.Todo, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) newScope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, operation))
}

func (repo *repositoryImpl) storeError(ctx context.Context, scope otel.Scope, action string, err error) error {
	logger.CtxErrorWithStack(ctx, err)
	scope.TraceError(err)

	return fmt.Errorf("%w: failed to %s (%s): %w", ErrStore, action, model.EntityName, err)
}

func (repo *repositoryImpl) Insert(ctx context.Context, title string) (model.Todo, error) {
	ctx, scope := repo.newScope(ctx, "Insert")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES (:%s, false) RETURNING %s",
		model.TableName, model.FieldTitle, model.FieldCompleted, model.FieldTitle, columns,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var todo model.Todo

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return todo, repo.storeError(ctx, scope, "prepare insert", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &todo, map[string]any{model.FieldTitle: title}); err != nil {
		return todo, repo.storeError(ctx, scope, "insert data", err)
	}

	return todo, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Todo, error) {
	ctx, scope := repo.newScope(ctx, "GetAll")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s", columns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	todos := []model.Todo{}

	if err := repo.db.DB.SelectContext(ctx, &todos, query); err != nil {
		return nil, repo.storeError(ctx, scope, "get all data", err)
	}

	scope.SetAttribute("result.count", len(todos))

	return todos, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int) (*model.Todo, error) {
	ctx, scope := repo.newScope(ctx, "Get")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = :%s", columns, model.TableName, model.FieldID, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.storeError(ctx, scope, "prepare get", err)
	}
	defer prepare.Close()

	var todo model.Todo

	err = prepare.GetContext(ctx, &todo, map[string]any{model.FieldID: id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil
	}

	if err != nil {
		return nil, repo.storeError(ctx, scope, "get data", err)
	}

	return &todo, nil
}

func (repo *repositoryImpl) UpdateTitle(ctx context.Context, id int, title string) (*model.Todo, error) {
	ctx, scope := repo.newScope(ctx, "UpdateTitle")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :%s WHERE %s = :%s RETURNING %s",
		model.TableName, model.FieldTitle, model.FieldTitle, model.FieldID, model.FieldID, columns,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.storeError(ctx, scope, "prepare update", err)
	}
	defer prepare.Close()

	var todo model.Todo

	err = prepare.GetContext(ctx, &todo, map[string]any{
		model.FieldID:    id,
		model.FieldTitle: title,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil
	}

	if err != nil {
		return nil, repo.storeError(ctx, scope, "update data", err)
	}

	return &todo, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int) (int64, error) {
	ctx, scope := repo.newScope(ctx, "Delete")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :%s", model.TableName, model.FieldID, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.DB.NamedExecContext(ctx, query, map[string]any{model.FieldID: id})
	if err != nil {
		return 0, repo.storeError(ctx, scope, "delete data", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.storeError(ctx, scope, "count deleted rows", err)
	}

	scope.SetAttribute("result.affected", affected)

	return affected, nil
}
