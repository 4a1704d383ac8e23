package auth

import (
	"net/http"
	"strings"

	"lendbook/core"
	"lendbook/handler/render"
	"lendbook/handler/request"

	"github.com/fox-one/pkg/logger"
)

// HandleAuthentication handle authentication
func HandleAuthentication(session core.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			accessToken := getBearerToken(r)
			if accessToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			account, err := session.Login(ctx, accessToken)
			if err != nil {
				next.ServeHTTP(w, r)
				log.WithError(err).Debugln("parse access token error:", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(request.NewContext(ctx).WithAccount(account)))
		}

		return http.HandlerFunc(fn)
	}
}

// LoginRequired reject requests without an authenticated account
func LoginRequired(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := request.NewContext(r.Context()).GetAccount(); !ok {
			render.Error(w, core.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func getBearerToken(r *http.Request) string {
	s := r.Header.Get("Authorization")
	return strings.TrimPrefix(s, "Bearer ")
}
