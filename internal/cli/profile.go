package cli

import (
	"context"
	"fmt"
	"strconv"

	"fittrack/internal/api"
	"fittrack/internal/models"
)

func creds(email, username, password string) models.Credentials {
	return models.Credentials{Email: email, Username: username, Password: password}
}

// Onboard prompts for the required profile attributes, pushes them to the
// server and installs the updated profile. Used both for the initial
// onboarding flow and later profile edits.
func (a *App) Onboard(ctx context.Context) error {
	ageText, err := getSimpleText(a.reader, "Enter age", a.out)
	if err != nil {
		return err
	}
	age, err := strconv.Atoi(ageText)
	if err != nil || age <= 0 {
		fmt.Fprintln(a.out, "Age must be a positive number.")
		return nil
	}

	weightText, err := getSimpleText(a.reader, "Enter weight (kg)", a.out)
	if err != nil {
		return err
	}
	weight, err := strconv.ParseFloat(weightText, 64)
	if err != nil || weight <= 0 {
		fmt.Fprintln(a.out, "Weight must be a positive number.")
		return nil
	}

	goal, err := getSimpleText(a.reader, "Enter goal (cut/bulk/maintain)", a.out)
	if err != nil {
		return err
	}
	if goal == "" {
		fmt.Fprintln(a.out, "Goal must not be empty.")
		return nil
	}

	token := a.session.Token()
	updated, err := a.api.UpdateProfile(ctx, token, api.ProfileUpdate{Age: age, Weight: weight, Goal: goal})
	if err != nil {
		a.log.Error(ctx, "profile update failed", "err", err)
		msg := api.ServerMessage(err)
		if msg == "" {
			msg = "Profile update failed"
		}
		fmt.Fprintf(a.out, "!! %s\n", msg)
		return nil
	}

	updated.Token = token
	a.session.SetUser(updated)
	fmt.Fprintln(a.out, "Profile saved.")
	return nil
}

// ShowProfile prints the current user's profile.
func (a *App) ShowProfile(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		return nil
	}
	fmt.Fprintf(a.out, "Email:  %s\n", user.Email)
	if user.Username != "" {
		fmt.Fprintf(a.out, "Name:   %s\n", user.Username)
	}
	fmt.Fprintf(a.out, "Age:    %d\n", user.Age)
	fmt.Fprintf(a.out, "Weight: %.1f kg\n", user.Weight)
	fmt.Fprintf(a.out, "Goal:   %s\n", user.Goal)
	return nil
}
