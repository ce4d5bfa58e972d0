package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"fittrack/internal/api"
	"fittrack/internal/logging"
	"fittrack/internal/models"
	"fittrack/internal/session"
)

func stubInputs(t *testing.T, lines []string, password string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// scriptedAPI is a minimal api.Client for App-level tests.
type scriptedAPI struct {
	loginRes    *api.AuthResult
	loginErr    error
	registerRes *api.AuthResult
	registerErr error
	updateRes   *models.User
	updateErr   error

	lastUpdate api.ProfileUpdate
}

func (s *scriptedAPI) Register(context.Context, models.Credentials) (*api.AuthResult, error) {
	return s.registerRes, s.registerErr
}
func (s *scriptedAPI) Login(context.Context, models.Credentials) (*api.AuthResult, error) {
	return s.loginRes, s.loginErr
}
func (s *scriptedAPI) CurrentUser(context.Context, string) (*models.User, error) {
	return nil, api.ErrUnavailable
}
func (s *scriptedAPI) UpdateProfile(_ context.Context, _ string, update api.ProfileUpdate) (*models.User, error) {
	s.lastUpdate = update
	return s.updateRes, s.updateErr
}
func (s *scriptedAPI) FoodLogs(context.Context, string) ([]models.FoodEntry, error) {
	return nil, api.ErrUnavailable
}
func (s *scriptedAPI) ActivityLogs(context.Context, string) ([]models.ActivityEntry, error) {
	return nil, api.ErrUnavailable
}

type nullTokens struct{}

func (nullTokens) Load(context.Context) (string, error) { return "", nil }
func (nullTokens) Save(context.Context, string) error   { return nil }
func (nullTokens) Delete(context.Context) error         { return nil }

func newTestApp(apiClient api.Client) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	ctrl := session.New(apiClient, nullTokens{}, NewNotifier(out), log)
	return &App{
		api:     apiClient,
		session: ctrl,
		log:     log,
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}, out
}

func TestApp_Login_Success(t *testing.T) {
	s := &scriptedAPI{loginRes: &api.AuthResult{
		User:  models.User{ID: 1, Email: "a@b.com", Age: 30, Weight: 80, Goal: "cut"},
		Token: "T",
	}}
	app, out := newTestApp(s)

	restore := stubInputs(t, []string{"a@b.com"}, "x")
	defer restore()

	if err := app.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome back, a@b.com!") {
		t.Errorf("missing greeting: %s", out.String())
	}
	if app.CurrentView() != session.ViewMain {
		t.Errorf("view = %v, want main", app.CurrentView())
	}
}

func TestApp_Login_FailureShowsNotification(t *testing.T) {
	s := &scriptedAPI{loginErr: &api.Error{Status: 400, Message: "Invalid credentials"}}
	app, out := newTestApp(s)

	restore := stubInputs(t, []string{"a@b.com"}, "bad")
	defer restore()

	if err := app.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !strings.Contains(out.String(), "!! Invalid credentials") {
		t.Errorf("missing notification: %s", out.String())
	}
	if app.session.User() != nil {
		t.Error("user must stay unset after failed login")
	}
}

func TestApp_Register_Success(t *testing.T) {
	s := &scriptedAPI{registerRes: &api.AuthResult{
		User:  models.User{ID: 2, Email: "new@b.com"},
		Token: "N",
	}}
	app, out := newTestApp(s)

	restore := stubInputs(t, []string{"new@b.com", "newbie"}, "pw")
	defer restore()

	if err := app.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if !strings.Contains(out.String(), "Account created") {
		t.Errorf("missing greeting: %s", out.String())
	}
	if app.CurrentView() != session.ViewOnboarding {
		t.Errorf("view = %v, want onboarding", app.CurrentView())
	}
}

func TestApp_Onboard_Success(t *testing.T) {
	s := &scriptedAPI{
		loginRes:  &api.AuthResult{User: models.User{ID: 1, Email: "a@b.com"}, Token: "T"},
		updateRes: &models.User{ID: 1, Email: "a@b.com", Age: 30, Weight: 80, Goal: "cut"},
	}
	app, out := newTestApp(s)

	restore := stubInputs(t, []string{"a@b.com"}, "x")
	app.Login(context.Background())
	restore()

	restore = stubInputs(t, []string{"30", "80", "cut"}, "")
	defer restore()

	if err := app.Onboard(context.Background()); err != nil {
		t.Fatalf("Onboard err: %v", err)
	}
	if s.lastUpdate.Age != 30 || s.lastUpdate.Weight != 80 || s.lastUpdate.Goal != "cut" {
		t.Errorf("update sent = %+v", s.lastUpdate)
	}
	if !strings.Contains(out.String(), "Profile saved.") {
		t.Errorf("missing confirmation: %s", out.String())
	}
	if app.CurrentView() != session.ViewMain {
		t.Errorf("view = %v, want main after onboarding", app.CurrentView())
	}
	if got := app.session.User().Token; got != "T" {
		t.Errorf("token lost on profile update: %q", got)
	}
}

func TestApp_Onboard_RejectsBadInput(t *testing.T) {
	s := &scriptedAPI{}
	app, out := newTestApp(s)

	restore := stubInputs(t, []string{"minus five"}, "")
	defer restore()

	if err := app.Onboard(context.Background()); err != nil {
		t.Fatalf("Onboard err: %v", err)
	}
	if !strings.Contains(out.String(), "Age must be a positive number.") {
		t.Errorf("missing validation notice: %s", out.String())
	}
}

func TestApp_Logout(t *testing.T) {
	s := &scriptedAPI{loginRes: &api.AuthResult{
		User:  models.User{ID: 1, Email: "a@b.com", Age: 30, Weight: 80, Goal: "cut"},
		Token: "T",
	}}
	app, out := newTestApp(s)

	restore := stubInputs(t, []string{"a@b.com"}, "x")
	defer restore()
	app.Login(context.Background())

	if err := app.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !strings.Contains(out.String(), "Logged out.") {
		t.Errorf("missing confirmation: %s", out.String())
	}
	if app.CurrentView() != session.ViewLogin {
		t.Errorf("view = %v, want login", app.CurrentView())
	}
}
