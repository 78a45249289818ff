package api

import (
	"context"
	"net/http"

	"storefront-service/internal/session"
)

// SessionCookieName is the cookie carrying the visitor's session id.
const SessionCookieName = "storefront_session"

type contextKey int

const sessionContextKey contextKey = iota

// SessionMiddleware resolves the visitor's session from the cookie,
// creating a fresh one (empty cart, closed drawer, empty wishlist) when
// the cookie is absent or references a session this process never
// issued, and stores it on the request context.
func SessionMiddleware(manager *session.Manager) func(http.Handler) http.Handler {
	if manager == nil {
		panic("api: SessionMiddleware requires a non-nil session manager")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				sess = manager.Get(cookie.Value)
			}
			if sess == nil {
				sess = manager.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFrom returns the session placed on the context by
// SessionMiddleware. A missing session means the middleware was not
// mounted, which is a wiring bug, so it fails loudly.
func sessionFrom(r *http.Request) *session.Session {
	sess, ok := r.Context().Value(sessionContextKey).(*session.Session)
	if !ok || sess == nil {
		panic("api: no session on request context; SessionMiddleware is not mounted")
	}
	return sess
}
