package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/shared/constant"
	"todoapi/shared/failure"

	"github.com/rs/zerolog/log"
)

// MessageNotFound is returned, wrapped in a not found failure, whenever no
// todo has the requested id.
const MessageNotFound = "Todo not found"

type Todo interface {
	Create(ctx context.Context, req dto.TodoInput) (dto.Todo, error)
	GetAll(ctx context.Context) ([]dto.Todo, error)
	Get(ctx context.Context, id int) (dto.Todo, error)
	Update(ctx context.Context, id int, req dto.TodoInput) (dto.Todo, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.TodoInput) (res dto.Todo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Insert(ctx, req.GetTitle())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo)
	scope.SetAttribute("todo.id", res.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.Todo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.Todo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo == nil {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	res.FromModel(*todo)

	return res, nil
}

// Update replaces the title only; completed is never written.
func (s *serviceImpl) Update(ctx context.Context, id int, req dto.TodoInput) (res dto.Todo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	todo, err := s.repo.UpdateTitle(ctx, id, req.GetTitle())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	if todo == nil {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	res.FromModel(*todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	return nil
}
