// Package api implements the client for the fittrack REST API.
//
// The credential token is passed explicitly per call rather than being held
// in shared client configuration, so a single client instance can serve any
// session state without mutable ambient headers.
package api

import (
	"context"

	"fittrack/internal/models"
)

// AuthResult is the payload of a successful register or login call.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"jwt"`
}

// ProfileUpdate carries the onboarding/profile attributes for UpdateProfile.
// Zero-valued fields are omitted and left unchanged on the server.
type ProfileUpdate struct {
	Age    int     `json:"age,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Goal   string  `json:"goal,omitempty"`
}

// Client defines the remote operations the application depends on.
//
// Every method honors context cancellation. Methods taking a token attach it
// as a bearer credential; they never fall back to any stored state.
type Client interface {
	Register(ctx context.Context, creds models.Credentials) (*AuthResult, error)
	Login(ctx context.Context, creds models.Credentials) (*AuthResult, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*models.User, error)
	FoodLogs(ctx context.Context, token string) ([]models.FoodEntry, error)
	ActivityLogs(ctx context.Context, token string) ([]models.ActivityEntry, error)
}
