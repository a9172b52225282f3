package web

import (
	"context"
	"net/http"

	"locallibrary/internal/session"
	"locallibrary/internal/user"
)

type contextKey string

const actorKey contextKey = "actor"

// Actor is the authenticated entity behind a request, with its session and
// permission set loaded once per request.
type Actor struct {
	User    user.User
	Session session.Session
	Perms   map[string]bool
}

// Has reports whether the actor holds every listed permission code.
func (a *Actor) Has(codes ...string) bool {
	for _, code := range codes {
		if !a.Perms[code] {
			return false
		}
	}
	return true
}

func contextWithActor(ctx context.Context, a *Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// actorFrom returns the request's actor, or nil for anonymous requests.
func actorFrom(r *http.Request) *Actor {
	if a, ok := r.Context().Value(actorKey).(*Actor); ok {
		return a
	}
	return nil
}
