package router

import (
	"net/http"
	"todoapi/docs"
	"todoapi/internal/handlers/todo"
	"todoapi/shared/constant"
	"todoapi/transport/http/middleware"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

const (
	PathOpenAPI   = "/api-docs/openapi.json"
	PathSwaggerUI = "/swagger-ui"
)

type DomainHandlers struct {
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestID,
		r.Middleware.AccessLog,
		chiMiddleware.Recoverer,
		r.Middleware.CORS(),
		r.Middleware.Tracing,
	)

	r.DomainHandlers.Todo.Router(router)

	router.Get(PathOpenAPI, serveOpenAPI)
	router.Get(PathSwaggerUI, http.RedirectHandler(PathSwaggerUI+"/index.html", http.StatusMovedPermanently).ServeHTTP)
	router.Get(PathSwaggerUI+"/*", httpSwagger.Handler(httpSwagger.URL(PathOpenAPI)))
}

// serveOpenAPI writes the document registered by the docs package.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		log.Error().Err(err).Msg("failed to read API document")
		response.WithText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	_, _ = w.Write([]byte(doc))
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
