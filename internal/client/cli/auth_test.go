package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/ekalnins/campustrade/internal/client/api"
	"github.com/ekalnins/campustrade/internal/client/models"
	"github.com/ekalnins/campustrade/internal/client/session"
	"github.com/ekalnins/campustrade/internal/client/storage"
	"github.com/ekalnins/campustrade/internal/logging"
)

// stubInputs replaces the interactive input seams: every text prompt gets
// the next value from answers, and the password prompt returns pw.
func stubInputs(t *testing.T, answers []string, pw string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt #%d", i)
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeUserAPI struct {
	loginResult    *api.LoginResult
	loginErr       error
	loginParams    models.LoginParams
	registerResult *api.RegisterResult
	registerErr    error
	registerParams models.RegisterParams
	user           *models.User
}

func (f *fakeUserAPI) Login(_ context.Context, params models.LoginParams) (*api.LoginResult, error) {
	f.loginParams = params
	return f.loginResult, f.loginErr
}

func (f *fakeUserAPI) Register(_ context.Context, params models.RegisterParams) (*api.RegisterResult, error) {
	f.registerParams = params
	return f.registerResult, f.registerErr
}

func (f *fakeUserAPI) GetUser(context.Context, int64) (*models.User, error) {
	return f.user, nil
}

func (f *fakeUserAPI) UpdateUser(context.Context, int64, models.UserUpdate) error {
	return nil
}

func newTestApp(users session.UserAPI, out *bytes.Buffer) *App {
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return &App{
		session: session.New(users, storage.NewMemStore(), log),
		out:     out,
	}
}

func TestRegister_Success(t *testing.T) {
	f := &fakeUserAPI{registerResult: &api.RegisterResult{Message: "registration successful", UserID: 7}}
	var out bytes.Buffer
	a := newTestApp(f, &out)

	stubInputs(t, []string{"20230001", "alice", "Alice A", "13800000000", "alice@example.org"}, "secret")

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.registerParams.Username != "alice" || f.registerParams.Password != "secret" {
		t.Fatalf("register params mismatch: %+v", f.registerParams)
	}
	if !strings.Contains(out.String(), "registration successful") {
		t.Fatalf("result not printed: %s", out.String())
	}
	if a.isLoggedIn() {
		t.Fatal("registration must not create a session")
	}
}

func TestLogin_EstablishesSession(t *testing.T) {
	f := &fakeUserAPI{loginResult: &api.LoginResult{
		Message: "login successful",
		User:    &models.User{UserID: 7, Username: "alice", CreditScore: 100},
		Token:   "tok",
	}}
	var out bytes.Buffer
	a := newTestApp(f, &out)

	stubInputs(t, []string{"alice"}, "secret")

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginParams.LoginField != "alice" || f.loginParams.Password != "secret" {
		t.Fatalf("login params mismatch: %+v", f.loginParams)
	}
	if !a.isLoggedIn() {
		t.Fatal("session not established")
	}
	if a.statusLine() != "alice" {
		t.Fatalf("statusLine = %q", a.statusLine())
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	f := &fakeUserAPI{loginResult: &api.LoginResult{
		Message: "login successful",
		User:    &models.User{UserID: 7, Username: "alice"},
		Token:   "tok",
	}}
	var out bytes.Buffer
	a := newTestApp(f, &out)

	stubInputs(t, []string{"alice"}, "secret")
	if err := a.Login(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if a.isLoggedIn() {
		t.Fatal("session not cleared")
	}
	if a.statusLine() != "guest" {
		t.Fatalf("statusLine = %q", a.statusLine())
	}
}

func TestWhoAmI(t *testing.T) {
	var out bytes.Buffer
	a := newTestApp(&fakeUserAPI{}, &out)

	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Not logged in") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}
