package todo

import (
	"net/http"
	"strconv"
	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared/constant"
	"todoapi/shared/validator"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Plain text bodies sent back to clients.
const (
	MessageDeleted      = "Todo deleted"
	MessageCreateFailed = "Error saving new todo"
	MessageListFailed   = "Error loading todos"
	MessageGetFailed    = "Error loading todo"
	MessageUpdateFailed = "Error updating todo"
	MessageDeleteFailed = "Error deleting todo"
)

// idPattern keeps non numeric ids from ever reaching a handler.
const idPattern = "/{" + constant.RequestParamID + ":-?[0-9]+}"

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Get(idPattern, handler.GetTodoByID)
		routerGroup.Put(idPattern, handler.UpdateTodo)
		routerGroup.Delete(idPattern, handler.DeleteTodo)
	})
}

// CreateTodo stores a new todo and answers with the stored record.
//
// @Summary Create a new TODO
// @Description Store a todo with the given title. New todos are not completed.
// @Tags Todo
// @ID create_todo
// @Accept json
// @Produce json,plain
// @Param request body dto.TodoInput true "Todo to create"
// @Success 200 {object} dto.Todo "Created a new TODO"
// @Failure 400 {string} string "Malformed body or missing title"
// @Failure 500 {string} string "Error saving new todo"
// @Router /todos [post]
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.TodoInput{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Warn().Err(err).Msg("failed to validate request body")

		response.WithFailure(w, err, MessageCreateFailed)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to create todo")

		response.WithFailure(w, err, MessageCreateFailed)

		return
	}

	scope.AddEvent("Todo created successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// GetTodos lists every todo.
//
// @Summary Get all TODOs
// @Tags Todo
// @ID get_todos
// @Produce json,plain
// @Success 200 {array} dto.Todo "Get all TODOs"
// @Failure 500 {string} string "Error loading todos"
// @Router /todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to get todos")

		response.WithFailure(w, err, MessageListFailed)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// GetTodoByID answers with a single todo.
//
// @Summary Get a specific TODO
// @Tags Todo
// @ID get_todo
// @Produce json,plain
// @Param id path int true "ID of the TODO to retrieve"
// @Success 200 {object} dto.Todo "Get a specific TODO"
// @Failure 404 {string} string "Todo not found"
// @Failure 500 {string} string "Error loading todo"
// @Router /todos/{id} [get]
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to get todo by ID")

		response.WithFailure(w, err, MessageGetFailed)

		return
	}

	scope.AddEvent("Todo retrieved successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// UpdateTodo replaces the title of an existing todo.
//
// @Summary Update a TODO
// @Description Replace the title of a todo. The completed flag is left as is.
// @Tags Todo
// @ID update_todo
// @Accept json
// @Produce json,plain
// @Param id path int true "ID of the TODO to update"
// @Param request body dto.TodoInput true "New title"
// @Success 200 {object} dto.Todo "Update a TODO"
// @Failure 400 {string} string "Malformed body or missing title"
// @Failure 404 {string} string "Todo not found"
// @Failure 500 {string} string "Error updating todo"
// @Router /todos/{id} [put]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	req := dto.TodoInput{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Warn().Err(err).Msg("failed to validate request body")

		response.WithFailure(w, err, MessageUpdateFailed)

		return
	}

	todo, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to update todo")

		response.WithFailure(w, err, MessageUpdateFailed)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo removes a todo.
//
// @Summary Delete a TODO
// @Tags Todo
// @ID delete_todo
// @Produce plain
// @Param id path int true "ID of the TODO to delete"
// @Success 200 {string} string "Todo deleted"
// @Failure 404 {string} string "Todo not found"
// @Failure 500 {string} string "Error deleting todo"
// @Router /todos/{id} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to delete todo")

		response.WithFailure(w, err, MessageDeleteFailed)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithText(w, http.StatusOK, MessageDeleted)
}

// todoID reads the id path parameter. Ids are 32 bit in the table, so larger
// values cannot match any row and are answered as not found.
func todoID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 32)
	if err != nil {
		response.WithText(w, http.StatusNotFound, service.MessageNotFound)

		return 0, false
	}

	return int(id), true
}
