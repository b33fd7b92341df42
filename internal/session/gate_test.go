package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhall/lawdesk/pkg/types"
)

// fakeAuth is a scriptable AuthService.
type fakeAuth struct {
	signInPrincipal types.Principal
	signInErr       error
	signUpErr       error
	signOutErr      error
	current         *types.Principal
	currentErr      error
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (types.Principal, error) {
	if f.signInErr != nil {
		return types.Principal{}, f.signInErr
	}
	return f.signInPrincipal, nil
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password, fullName string) (types.Principal, error) {
	if f.signUpErr != nil {
		return types.Principal{}, f.signUpErr
	}
	return types.Principal{ID: "new", Email: email}, nil
}

func (f *fakeAuth) SignOut(ctx context.Context) error { return f.signOutErr }

func (f *fakeAuth) Current(ctx context.Context) (*types.Principal, error) {
	return f.current, f.currentErr
}

// fakeProfiles serves one profile, or fails.
type fakeProfiles struct {
	profile types.Profile
	err     error
}

func (f *fakeProfiles) FetchProfile(ctx context.Context, principalID string) (types.Profile, error) {
	return f.profile, f.err
}

func TestNewStartsInitializing(t *testing.T) {
	g := New(&fakeAuth{}, nil, zerolog.Nop())

	state := g.State()
	assert.Equal(t, PhaseInitializing, state.Phase)
	assert.True(t, state.Loading)
	require.ErrorIs(t, g.Guard(), ErrUnauthenticated)
}

func TestStartWithExistingSession(t *testing.T) {
	auth := &fakeAuth{current: &types.Principal{ID: "u1", Email: "zhang@lawfirm.com"}}
	profiles := &fakeProfiles{profile: types.Profile{ID: "u1", FullName: "張大律師", Role: types.RoleLawyer}}
	g := New(auth, profiles, zerolog.Nop())

	g.Start(context.Background())

	state := g.State()
	assert.Equal(t, PhaseAuthenticated, state.Phase)
	assert.False(t, state.Loading)
	require.NotNil(t, state.Principal)
	assert.Equal(t, "zhang@lawfirm.com", state.Principal.Email)
	require.NotNil(t, state.Profile)
	assert.Equal(t, "張大律師", state.Profile.FullName)
	assert.NoError(t, g.Guard())
}

func TestStartWithoutSession(t *testing.T) {
	g := New(&fakeAuth{current: nil}, nil, zerolog.Nop())

	g.Start(context.Background())

	state := g.State()
	assert.Equal(t, PhaseUnauthenticated, state.Phase)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Principal)
	require.ErrorIs(t, g.Guard(), ErrUnauthenticated)
}

func TestStartCheckFailureResolvesUnauthenticated(t *testing.T) {
	g := New(&fakeAuth{currentErr: errors.New("service unreachable")}, nil, zerolog.Nop())

	g.Start(context.Background())

	// The gate never blocks on a failed check; it resolves to signed-out
	// so the caller can proceed to a login prompt.
	assert.Equal(t, PhaseUnauthenticated, g.State().Phase)
}

func TestSignIn(t *testing.T) {
	auth := &fakeAuth{signInPrincipal: types.Principal{ID: "u1", Email: "li@lawfirm.com"}}
	g := New(auth, nil, zerolog.Nop())

	require.NoError(t, g.SignIn(context.Background(), "li@lawfirm.com", "pw"))

	state := g.State()
	assert.Equal(t, PhaseAuthenticated, state.Phase)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
	assert.NoError(t, g.Guard())
}

func TestSignInFailureExposesMessageVerbatim(t *testing.T) {
	auth := &fakeAuth{signInErr: errors.New("Invalid login credentials")}
	g := New(auth, nil, zerolog.Nop())

	err := g.SignIn(context.Background(), "li@lawfirm.com", "wrong")
	require.Error(t, err)

	state := g.State()
	assert.Equal(t, "Invalid login credentials", state.Err)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Principal)
	require.ErrorIs(t, g.Guard(), ErrUnauthenticated)
}

func TestSignInRetryClearsPreviousError(t *testing.T) {
	auth := &fakeAuth{signInErr: errors.New("Invalid login credentials")}
	g := New(auth, nil, zerolog.Nop())

	require.Error(t, g.SignIn(context.Background(), "li@lawfirm.com", "wrong"))

	auth.signInErr = nil
	auth.signInPrincipal = types.Principal{ID: "u1", Email: "li@lawfirm.com"}
	require.NoError(t, g.SignIn(context.Background(), "li@lawfirm.com", "right"))

	state := g.State()
	assert.Empty(t, state.Err)
	assert.Equal(t, PhaseAuthenticated, state.Phase)
}

func TestProfileFetchFailureKeepsPrincipal(t *testing.T) {
	auth := &fakeAuth{signInPrincipal: types.Principal{ID: "u1", Email: "li@lawfirm.com"}}
	profiles := &fakeProfiles{err: errors.New("profile not found")}
	g := New(auth, profiles, zerolog.Nop())

	require.NoError(t, g.SignIn(context.Background(), "li@lawfirm.com", "pw"))

	// The principal stays signed in; only the profile is missing.
	state := g.State()
	assert.Equal(t, PhaseAuthenticated, state.Phase)
	require.NotNil(t, state.Principal)
	assert.Nil(t, state.Profile)
	assert.Equal(t, "profile not found", state.Err)
	assert.False(t, state.Loading)
	assert.NoError(t, g.Guard())
}

func TestSignUpDoesNotSignIn(t *testing.T) {
	g := New(&fakeAuth{}, nil, zerolog.Nop())

	require.NoError(t, g.SignUp(context.Background(), "new@lawfirm.com", "pw", "新律師"))

	state := g.State()
	assert.NotEqual(t, PhaseAuthenticated, state.Phase)
	assert.False(t, state.Loading)
}

func TestSignUpFailureExposesMessage(t *testing.T) {
	auth := &fakeAuth{signUpErr: errors.New("User already registered")}
	g := New(auth, nil, zerolog.Nop())

	err := g.SignUp(context.Background(), "dup@lawfirm.com", "pw", "重複")
	require.Error(t, err)
	assert.Equal(t, "User already registered", g.State().Err)
	assert.False(t, g.State().Loading)
}

func TestSignOut(t *testing.T) {
	auth := &fakeAuth{signInPrincipal: types.Principal{ID: "u1", Email: "li@lawfirm.com"}}
	g := New(auth, nil, zerolog.Nop())
	require.NoError(t, g.SignIn(context.Background(), "li@lawfirm.com", "pw"))

	require.NoError(t, g.SignOut(context.Background()))

	state := g.State()
	assert.Equal(t, PhaseUnauthenticated, state.Phase)
	assert.Nil(t, state.Principal)
	assert.Nil(t, state.Profile)
	require.ErrorIs(t, g.Guard(), ErrUnauthenticated)
}

func TestSignOutFailureStillClearsLocalState(t *testing.T) {
	auth := &fakeAuth{
		signInPrincipal: types.Principal{ID: "u1", Email: "li@lawfirm.com"},
		signOutErr:      errors.New("service unreachable"),
	}
	g := New(auth, nil, zerolog.Nop())
	require.NoError(t, g.SignIn(context.Background(), "li@lawfirm.com", "pw"))

	err := g.SignOut(context.Background())
	require.Error(t, err)
	assert.Equal(t, PhaseUnauthenticated, g.State().Phase)
}

func TestHandleEvent(t *testing.T) {
	g := New(&fakeAuth{}, nil, zerolog.Nop())
	ctx := context.Background()

	g.HandleEvent(ctx, Event{Kind: EventSignedIn, Principal: &types.Principal{ID: "u1", Email: "e"}})
	assert.Equal(t, PhaseAuthenticated, g.State().Phase)

	g.HandleEvent(ctx, Event{Kind: EventSignedOut})
	assert.Equal(t, PhaseUnauthenticated, g.State().Phase)

	// A signed-in event without a principal is ignored.
	g.HandleEvent(ctx, Event{Kind: EventSignedIn})
	assert.Equal(t, PhaseUnauthenticated, g.State().Phase)
}

func TestTokenRefreshKeepsAuthenticated(t *testing.T) {
	g := New(&fakeAuth{}, nil, zerolog.Nop())
	ctx := context.Background()

	g.HandleEvent(ctx, Event{Kind: EventSignedIn, Principal: &types.Principal{ID: "u1", Email: "e"}})
	g.HandleEvent(ctx, Event{Kind: EventTokenRefreshed, Principal: &types.Principal{ID: "u1", Email: "e"}})

	assert.Equal(t, PhaseAuthenticated, g.State().Phase)
	assert.NoError(t, g.Guard())
}
