package cli

import (
	"context"
	"strings"
	"testing"

	"fittrack/internal/models"
)

func TestApp_ShowFoodLogs(t *testing.T) {
	app, out := newTestApp(&scriptedAPI{})
	app.session.SetFoodLogs([]models.FoodEntry{
		{ID: 1, Name: "oatmeal", Calories: 320},
		{ID: 2, Name: "chicken salad", Calories: 410},
	})

	if err := app.ShowFoodLogs(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !strings.Contains(out.String(), "oatmeal") || !strings.Contains(out.String(), "410") {
		t.Errorf("output: %s", out.String())
	}
}

func TestApp_ShowFoodLogs_Empty(t *testing.T) {
	app, out := newTestApp(&scriptedAPI{})

	if err := app.ShowFoodLogs(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !strings.Contains(out.String(), "No food logged yet.") {
		t.Errorf("output: %s", out.String())
	}
}

func TestApp_ShowActivityLogs(t *testing.T) {
	app, out := newTestApp(&scriptedAPI{})
	app.session.SetActivityLogs([]models.ActivityEntry{
		{ID: 5, Name: "run", Minutes: 40, Calories: 380},
	})

	if err := app.ShowActivityLogs(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !strings.Contains(out.String(), "run") || !strings.Contains(out.String(), "40 min") {
		t.Errorf("output: %s", out.String())
	}
}

func TestApp_Refresh_WithoutTokenIsNoop(t *testing.T) {
	app, out := newTestApp(&scriptedAPI{})

	if err := app.Refresh(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if strings.Contains(out.String(), "refreshed") {
		t.Errorf("refresh ran without a session: %s", out.String())
	}
}
