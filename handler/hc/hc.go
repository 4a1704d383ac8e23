package hc

import (
	"net/http"
	"time"

	"lendbook/core"
	"lendbook/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/twitchtv/twirp"
)

var probeKey = []byte("hc")

// Handle health check: uptime, version and whether the state store answers
func Handle(ver string, store core.KVStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, store))
	return r
}

func handle(version string, store core.KVStore) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := store.Has(r.Context(), probeKey); err != nil {
			render.Error(w, twirp.NewError(twirp.Unavailable, "store: "+err.Error()))
			return
		}

		uptime := time.Since(b).Truncate(time.Millisecond)
		render.JSON(w, render.H{
			"uptime":  uptime.String(),
			"version": version,
		})
	}
}
