package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"todoapi/config"
	"todoapi/docs"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model/dto"
	serviceMocks "todoapi/internal/domains/todo/service/mocks"
	"todoapi/internal/handlers/todo"
	"todoapi/shared/constant"
	"todoapi/transport/http/middleware"
	"todoapi/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (http.Handler, *serviceMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockTodo(ctrl)
	otel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Name = "todoapi"

	r := router.New(
		router.DomainHandlers{Todo: todo.New(service, otel)},
		middleware.NewAppMiddleware(otel, cfg),
	)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux, service
}

func serve(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestRouter_Todos(t *testing.T) {
	mux, service := setup(t)

	service.EXPECT().GetAll(gomock.Any()).Return([]dto.Todo{{ID: 1, Title: "a"}}, nil)

	rec := serve(mux, http.MethodGet, "/todos")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"title":"a","completed":false}]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestRouter_NonNumericID(t *testing.T) {
	mux, _ := setup(t)

	rec := serve(mux, http.MethodGet, "/todos/abc")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type apiDocument struct {
	Swagger string `json:"swagger"`
	Info    struct {
		Title   string `json:"title"`
		Version string `json:"version"`
	} `json:"info"`
	Paths map[string]map[string]struct {
		OperationID string         `json:"operationId"`
		Responses   map[string]any `json:"responses"`
	} `json:"paths"`
	Definitions map[string]struct {
		Required []string `json:"required"`
	} `json:"definitions"`
}

func TestRouter_OpenAPI(t *testing.T) {
	mux, _ := setup(t)

	rec := serve(mux, http.MethodGet, router.PathOpenAPI)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))

	doc := apiDocument{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "2.0", doc.Swagger)

	operations := map[string]string{}
	for path, methods := range doc.Paths {
		for method, op := range methods {
			operations[op.OperationID] = method + " " + path
		}
	}

	assert.Equal(t, map[string]string{
		"create_todo": "post /todos",
		"get_todos":   "get /todos",
		"get_todo":    "get /todos/{id}",
		"update_todo": "put /todos/{id}",
		"delete_todo": "delete /todos/{id}",
	}, operations)

	for method, op := range doc.Paths["/todos/{id}"] {
		assert.Contains(t, op.Responses, "404", method)
	}

	assert.Contains(t, doc.Definitions, "dto.Todo")
	assert.Equal(t, []string{"title"}, doc.Definitions["dto.TodoInput"].Required)
}

func TestRouter_OpenAPIFollowsSwaggerInfo(t *testing.T) {
	mux, _ := setup(t)

	title, version := docs.SwaggerInfo.Title, docs.SwaggerInfo.Version
	t.Cleanup(func() {
		docs.SwaggerInfo.Title, docs.SwaggerInfo.Version = title, version
	})

	docs.SwaggerInfo.Title = "todo-service"
	docs.SwaggerInfo.Version = "2.3.4"

	rec := serve(mux, http.MethodGet, router.PathOpenAPI)

	doc := apiDocument{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "todo-service", doc.Info.Title)
	assert.Equal(t, "2.3.4", doc.Info.Version)
}

func TestRouter_SwaggerUI(t *testing.T) {
	mux, _ := setup(t)

	rec := serve(mux, http.MethodGet, router.PathSwaggerUI+"/index.html")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger")

	rec = serve(mux, http.MethodGet, router.PathSwaggerUI)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
}
