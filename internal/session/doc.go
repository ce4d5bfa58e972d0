// Package session owns the client's authentication lifecycle: it holds the
// current user, persists and restores the credential token, bootstraps the
// user's datasets at startup, and derives which view the presentation layer
// should render.
//
// All network failures are absorbed inside the controller. User-initiated
// operations (SignUp, LogIn) report failure through the injected Notifier;
// background restores only log and degrade their own slice of state to a
// safe default.
package session
