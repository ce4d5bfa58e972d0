package session

import (
	"context"
	"errors"
	"sync"

	"fittrack/internal/api"
	"fittrack/internal/logging"
	"fittrack/internal/models"
	"fittrack/internal/storage"
)

// Notifier surfaces user-facing notices. The CLI implements it by printing
// to the terminal; a GUI would show toasts.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Controller is the session state holder. All state is guarded by mu; the
// concurrent startup restores are the only writers running off the caller's
// goroutine.
type Controller struct {
	api    api.Client
	tokens storage.TokenStore
	notify Notifier
	log    logging.Logger

	mu           sync.RWMutex
	user         *models.User
	userFetched  bool
	onboarded    bool
	foodLogs     []models.FoodEntry
	activityLogs []models.ActivityEntry
}

func New(apiClient api.Client, tokens storage.TokenStore, notify Notifier, log logging.Logger) *Controller {
	return &Controller{
		api:    apiClient,
		tokens: tokens,
		notify: notify,
		log:    log.With("component", "session"),
	}
}

// SignUp registers a new account. On success the user is committed wholesale
// and the token persisted; on failure state is left untouched and the error
// is surfaced through the notifier only.
func (c *Controller) SignUp(ctx context.Context, creds models.Credentials) {
	res, err := c.api.Register(ctx, creds)
	if err != nil {
		c.log.Error(ctx, "signup failed", "err", err)
		c.notify.Error(failureMessage(err, "Signup failed"))
		return
	}
	c.commitAuth(ctx, res)
}

// LogIn authenticates with email and password. Same contract as SignUp.
func (c *Controller) LogIn(ctx context.Context, creds models.Credentials) {
	res, err := c.api.Login(ctx, creds)
	if err != nil {
		c.log.Error(ctx, "login failed", "err", err)
		c.notify.Error(failureMessage(err, "Login failed"))
		return
	}
	c.commitAuth(ctx, res)
}

// commitAuth installs the authenticated user and persists the token.
func (c *Controller) commitAuth(ctx context.Context, res *api.AuthResult) {
	user := res.User
	user.Token = res.Token

	c.mu.Lock()
	c.user = &user
	c.onboarded = user.OnboardingComplete()
	c.mu.Unlock()

	if err := c.tokens.Save(ctx, res.Token); err != nil {
		c.log.Warn(ctx, "failed to persist token", "err", err)
	}
}

// LogOut removes the persisted token and clears all session state. It never
// fails: a storage error only produces a warning.
func (c *Controller) LogOut(ctx context.Context) {
	if err := c.tokens.Delete(ctx); err != nil {
		c.log.Warn(ctx, "failed to remove stored token", "err", err)
	}

	c.mu.Lock()
	c.user = nil
	c.onboarded = false
	c.foodLogs = nil
	c.activityLogs = nil
	c.mu.Unlock()
}

// RestoreUser fetches the current user's profile with token. Failure is not
// alarming here: it means "not currently authenticated", so the user is
// cleared and a warning logged, nothing is shown to the user. The fetched
// flag is set unconditionally, whatever the outcome.
//
// A 401 means the token itself is dead, so it is also removed from durable
// storage; any other failure keeps it for the next startup to retry.
func (c *Controller) RestoreUser(ctx context.Context, token string) {
	defer func() {
		c.mu.Lock()
		c.userFetched = true
		c.mu.Unlock()
	}()

	user, err := c.api.CurrentUser(ctx, token)
	if err != nil {
		c.log.Warn(ctx, "session restore failed", "err", err)

		c.mu.Lock()
		c.user = nil
		c.onboarded = false
		c.mu.Unlock()

		if errors.Is(err, api.ErrUnauthorized) {
			if derr := c.tokens.Delete(ctx); derr != nil {
				c.log.Warn(ctx, "failed to remove stale token", "err", derr)
			}
		}
		return
	}

	user.Token = token
	c.mu.Lock()
	c.user = user
	c.onboarded = user.OnboardingComplete()
	c.mu.Unlock()
}

// RestoreFoodLogs replaces the food log snapshot from the server. On failure
// the snapshot resets to empty; nothing else is touched.
func (c *Controller) RestoreFoodLogs(ctx context.Context, token string) {
	logs, err := c.api.FoodLogs(ctx, token)
	if err != nil {
		c.log.Warn(ctx, "food log restore failed", "err", err)
		logs = nil
	}

	c.mu.Lock()
	c.foodLogs = logs
	c.mu.Unlock()
}

// RestoreActivityLogs replaces the activity log snapshot from the server.
// Same contract as RestoreFoodLogs.
func (c *Controller) RestoreActivityLogs(ctx context.Context, token string) {
	logs, err := c.api.ActivityLogs(ctx, token)
	if err != nil {
		c.log.Warn(ctx, "activity log restore failed", "err", err)
		logs = nil
	}

	c.mu.Lock()
	c.activityLogs = logs
	c.mu.Unlock()
}

// Bootstrap runs the once-per-start session restore. Without a stored token
// (or with one already expired) the auth state is determined immediately and
// no network call is made. Otherwise the three restores run concurrently and
// independently: each absorbs its own failure, the join only signals that
// all of them settled.
func (c *Controller) Bootstrap(ctx context.Context) {
	token, err := c.tokens.Load(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to read stored token", "err", err)
		token = ""
	}

	if token == "" {
		c.mu.Lock()
		c.userFetched = true
		c.mu.Unlock()
		return
	}

	if expired(token) {
		c.log.Info(ctx, "stored token expired, discarding")
		if err := c.tokens.Delete(ctx); err != nil {
			c.log.Warn(ctx, "failed to remove expired token", "err", err)
		}
		c.mu.Lock()
		c.userFetched = true
		c.mu.Unlock()
		return
	}

	restores := []func(context.Context, string){
		c.RestoreUser,
		c.RestoreFoodLogs,
		c.RestoreActivityLogs,
	}

	var wg sync.WaitGroup
	for _, restore := range restores {
		restore := restore
		wg.Add(1)
		go func() {
			defer wg.Done()
			restore(ctx, token)
		}()
	}
	wg.Wait()
}

// failureMessage prefers the server-supplied error text, falling back to a
// generic message.
func failureMessage(err error, fallback string) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}
