package web

import (
	"net/http"
	"net/url"

	"locallibrary/internal/httpx"
)

const sessionCookie = "locallibrary_session"

// withActor resolves the session cookie into an Actor and attaches it to the
// request context. Absent, tampered or expired cookies leave the request
// anonymous; the policy middleware below decides whether that matters.
func (s *Server) withActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := s.sessions.FromCookie(r.Context(), cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		u, err := s.users.GetByID(r.Context(), sess.UserID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		codes, err := s.users.PermissionCodes(r.Context(), u.ID)
		if err != nil {
			s.serverError(w, r, err)
			return
		}

		perms := make(map[string]bool, len(codes))
		for _, code := range codes {
			perms[code] = true
		}

		actor := &Actor{User: u, Session: sess, Perms: perms}
		ctx := contextWithActor(r.Context(), actor)
		ctx = httpx.ContextWithUserID(ctx, u.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireLogin redirects anonymous requests to the login page, preserving the
// requested URL in the next parameter.
func (s *Server) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actorFrom(r) == nil {
			target := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requirePermissions rejects authenticated actors that lack any of the listed
// codes with a 403 page. All codes are required, not any. Must run inside
// requireLogin.
func (s *Server) requirePermissions(next http.Handler, codes ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r)
		if actor == nil {
			target := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		if !actor.Has(codes...) {
			s.forbidden(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// public, authed and permitted bundle the middleware stacks the route table
// uses.
func (s *Server) public(h http.HandlerFunc) http.Handler {
	return s.withActor(h)
}

func (s *Server) authed(h http.HandlerFunc) http.Handler {
	return s.withActor(s.requireLogin(h))
}

func (s *Server) permitted(h http.HandlerFunc, codes ...string) http.Handler {
	return s.withActor(s.requireLogin(s.requirePermissions(h, codes...)))
}
