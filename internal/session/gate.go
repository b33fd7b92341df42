// Package session gates access to protected surfaces behind an
// authenticated-principal check and exposes the principal's profile to the
// rest of the application.
package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/lexhall/lawdesk/pkg/types"
)

// Gate phases.
const (
	PhaseInitializing    = "initializing"
	PhaseAuthenticated   = "authenticated"
	PhaseUnauthenticated = "unauthenticated"
)

// ErrUnauthenticated is returned by Guard when no principal is signed in.
var ErrUnauthenticated = errors.New("not authenticated")

// AuthService is the external identity boundary. Sign-in and sign-up return
// the service's error message verbatim on failure. Current returns the
// principal of an existing session, or nil when there is none.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (types.Principal, error)
	SignUp(ctx context.Context, email, password, fullName string) (types.Principal, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (*types.Principal, error)
}

// ProfileService reads the extended profile keyed by principal id from the
// external record store.
type ProfileService interface {
	FetchProfile(ctx context.Context, principalID string) (types.Profile, error)
}

// EventKind enumerates auth state-change notifications from the external
// service.
type EventKind string

// Auth state-change notification kinds.
const (
	EventSignedIn       EventKind = "signed-in"
	EventTokenRefreshed EventKind = "token-refreshed"
	EventSignedOut      EventKind = "signed-out"
)

// Event is one auth state-change notification.
type Event struct {
	Kind      EventKind
	Principal *types.Principal
}

// State is a snapshot of the gate. Loading is true while initializing and
// while the profile fetch for a known principal is outstanding, so
// role-dependent surfaces never render from incorrect defaults.
type State struct {
	Phase     string
	Principal *types.Principal
	Profile   *types.Profile
	Loading   bool
	Err       string
}

// Gate is the session state machine: Initializing until the external check
// resolves, then Authenticated or Unauthenticated. Both the initial session
// check and subscription events feed the same transition function, so the
// two sources can never race each other into conflicting states.
type Gate struct {
	auth     AuthService
	profiles ProfileService
	log      zerolog.Logger
	state    State
}

// New creates a Gate in the Initializing phase. profiles may be nil, in
// which case authenticated principals simply carry no profile.
func New(auth AuthService, profiles ProfileService, log zerolog.Logger) *Gate {
	return &Gate{
		auth:     auth,
		profiles: profiles,
		log:      log.With().Str("component", "session").Logger(),
		state:    State{Phase: PhaseInitializing, Loading: true},
	}
}

// Start resolves the initial phase by checking for an existing session.
// A check failure resolves to Unauthenticated rather than blocking.
func (g *Gate) Start(ctx context.Context) {
	principal, err := g.auth.Current(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msg("session check failed")
		g.apply(ctx, Event{Kind: EventSignedOut})
		return
	}
	if principal == nil {
		g.apply(ctx, Event{Kind: EventSignedOut})
		return
	}
	g.apply(ctx, Event{Kind: EventSignedIn, Principal: principal})
}

// HandleEvent consumes a state-change notification from the external
// service subscription.
func (g *Gate) HandleEvent(ctx context.Context, ev Event) {
	g.apply(ctx, ev)
}

// apply is the single authoritative transition function.
func (g *Gate) apply(ctx context.Context, ev Event) {
	switch ev.Kind {
	case EventSignedIn, EventTokenRefreshed:
		if ev.Principal == nil {
			return
		}
		// Remain loading until the profile resolves.
		g.state = State{Phase: PhaseAuthenticated, Principal: ev.Principal, Loading: true}
		g.fetchProfile(ctx, *ev.Principal)
	case EventSignedOut:
		g.state = State{Phase: PhaseUnauthenticated}
	}
}

// fetchProfile loads the extended profile for the principal. A fetch
// failure is recoverable: the principal stays authenticated with a nil
// profile and the error message is exposed.
func (g *Gate) fetchProfile(ctx context.Context, principal types.Principal) {
	if g.profiles == nil {
		g.state.Loading = false
		return
	}
	profile, err := g.profiles.FetchProfile(ctx, principal.ID)
	if err != nil {
		g.log.Warn().Err(err).Str("principal", principal.ID).Msg("profile fetch failed")
		g.state.Err = err.Error()
		g.state.Loading = false
		return
	}
	g.state.Profile = &profile
	g.state.Loading = false
}

// SignIn authenticates with the external service. On failure the service's
// message is exposed verbatim and the gate returns to a non-loading state
// so the caller can retry.
func (g *Gate) SignIn(ctx context.Context, email, password string) error {
	g.state.Loading = true
	g.state.Err = ""

	principal, err := g.auth.SignIn(ctx, email, password)
	if err != nil {
		g.state.Err = err.Error()
		g.state.Loading = false
		return err
	}
	g.apply(ctx, Event{Kind: EventSignedIn, Principal: &principal})
	return nil
}

// SignUp registers a new identity. The new principal is not signed in;
// the service requires email verification before first sign-in.
func (g *Gate) SignUp(ctx context.Context, email, password, fullName string) error {
	g.state.Loading = true
	g.state.Err = ""

	if _, err := g.auth.SignUp(ctx, email, password, fullName); err != nil {
		g.state.Err = err.Error()
		g.state.Loading = false
		return err
	}
	g.state.Loading = false
	return nil
}

// SignOut clears local session artifacts and transitions to
// Unauthenticated. A sign-out failure on the external side still clears
// the local session.
func (g *Gate) SignOut(ctx context.Context) error {
	err := g.auth.SignOut(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msg("external sign-out failed")
	}
	g.apply(ctx, Event{Kind: EventSignedOut})
	return err
}

// State returns a snapshot of the gate.
func (g *Gate) State() State {
	return g.state
}

// Guard returns nil when a principal is authenticated, ErrUnauthenticated
// otherwise. Protected surfaces call Guard before doing anything.
func (g *Gate) Guard() error {
	if g.state.Phase != PhaseAuthenticated {
		return ErrUnauthenticated
	}
	return nil
}
