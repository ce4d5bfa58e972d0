package session

import "fittrack/internal/models"

// User returns a copy of the current user, or nil when unauthenticated.
func (c *Controller) User() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Token returns the current user's credential token, or "" when
// unauthenticated.
func (c *Controller) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return ""
	}
	return c.user.Token
}

// IsUserFetched reports whether the startup restore attempt has concluded.
// Once true it never reverts within the session's lifetime.
func (c *Controller) IsUserFetched() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userFetched
}

// OnboardingCompleted reports whether the current user has finished the
// one-time setup flow.
func (c *Controller) OnboardingCompleted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onboarded
}

// AllFoodLogs returns the current food log snapshot.
func (c *Controller) AllFoodLogs() []models.FoodEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.foodLogs
}

// AllActivityLogs returns the current activity log snapshot.
func (c *Controller) AllActivityLogs() []models.ActivityEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activityLogs
}

// SetUser replaces the current user after a presentation-initiated change
// (e.g. a profile edit) and re-derives the onboarding status.
func (c *Controller) SetUser(user *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user
	c.onboarded = user.OnboardingComplete()
}

// SetOnboardingCompleted overrides the derived onboarding status.
func (c *Controller) SetOnboardingCompleted(done bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onboarded = done
}

// SetFoodLogs replaces the food log snapshot after a local edit.
func (c *Controller) SetFoodLogs(logs []models.FoodEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.foodLogs = logs
}

// SetActivityLogs replaces the activity log snapshot after a local edit.
func (c *Controller) SetActivityLogs(logs []models.ActivityEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activityLogs = logs
}
