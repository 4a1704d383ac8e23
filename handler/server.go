package handler

import (
	"net/http"

	"lendbook/core"
	"lendbook/handler/auth"
	"lendbook/handler/render"
	"lendbook/handler/rest"
	"lendbook/service/lending"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	session core.Session
	module  *lending.Module
}

// New new server function
func New(
	session core.Session,
	module *lending.Module,
) Server {
	return Server{
		session: session,
		module:  module,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(resetRoutePath)
	r.Use(auth.HandleAuthentication(s.session))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, twirp.NotFoundError("not found"))
	})

	r.Mount("/api", rest.Handle(s.module))

	return r
}

func resetRoutePath(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if c := chi.RouteContext(ctx); c != nil {
			c.RoutePath = r.URL.Path
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
