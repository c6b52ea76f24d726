package nav

import (
	"context"

	"github.com/ekalnins/campustrade/internal/client/storage"
)

// Session is the slice of the session store the guard consults.
type Session interface {
	IsLoggedIn() bool
	Init(ctx context.Context)
}

// Guard decides, before each navigation, whether the target may be
// reached. It never mutates the target and has no error path: anything
// that prevents establishing a session reads as "unauthenticated".
type Guard struct {
	session Session
	kv      storage.Store
	login   Route
}

// NewGuard builds a guard that redirects to the login view.
func NewGuard(session Session, kv storage.Store) *Guard {
	login, _ := Lookup(RouteLogin)
	return &Guard{session: session, kv: kv, login: login}
}

// Decision is the outcome of one navigation check.
type Decision struct {
	// Route is where navigation actually goes: the target on
	// pass-through, the login view on redirect.
	Route      Route
	Redirected bool
}

// Resolve checks the target. When it requires a session and none is live
// but a persisted record exists, the session is re-hydrated first — this
// covers a store constructed after a restart that nobody initialized yet.
// An already-authenticated session passes through regardless of the
// target's requirement.
func (g *Guard) Resolve(ctx context.Context, target Route) Decision {
	if target.RequiresAuth && !g.session.IsLoggedIn() {
		if _, ok, err := g.kv.Get(ctx, storage.KeyUser); err == nil && ok {
			g.session.Init(ctx)
		}
	}

	if target.RequiresAuth && !g.session.IsLoggedIn() {
		return Decision{Route: g.login, Redirected: true}
	}
	return Decision{Route: target}
}
