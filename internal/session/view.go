package session

// View is the surface the presentation layer should render, derived purely
// from the session state.
type View int

const (
	// ViewLoading: auth state not yet determined, show a placeholder.
	ViewLoading View = iota
	// ViewLogin: determined unauthenticated, show the entry screen.
	ViewLogin
	// ViewOnboarding: authenticated but profile incomplete; the onboarding
	// flow excludes every other view.
	ViewOnboarding
	// ViewMain: authenticated and onboarded, show the application.
	ViewMain
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewLogin:
		return "login"
	case ViewOnboarding:
		return "onboarding"
	case ViewMain:
		return "main"
	default:
		return "unknown"
	}
}

// View derives the current view from the session state.
func (c *Controller) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch {
	case c.user == nil && !c.userFetched:
		return ViewLoading
	case c.user == nil:
		return ViewLogin
	case !c.onboarded:
		return ViewOnboarding
	default:
		return ViewMain
	}
}
