// Package models defines the client-side data model: the user profile and
// the food/activity log entries fetched from the fittrack API.
package models

// User is the profile record returned by the API, with the credential token
// attached for convenience. Age, Weight and Goal stay zero-valued until the
// user completes onboarding.
type User struct {
	ID       int     `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username,omitempty"`
	Age      int     `json:"age,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Goal     string  `json:"goal,omitempty"`
	Token    string  `json:"-"`
}

// OnboardingComplete reports whether the one-time setup flow has recorded
// all required profile attributes: age, weight and goal.
func (u *User) OnboardingComplete() bool {
	if u == nil {
		return false
	}
	return u.Age > 0 && u.Weight > 0 && u.Goal != ""
}

// Credentials is the payload sent to the register and login endpoints.
// Username is only used on registration.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}
