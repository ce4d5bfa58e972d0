package models

import "time"

// FoodEntry is a single logged meal with its nutrition snapshot.
type FoodEntry struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein,omitempty"`
	Carbs    float64   `json:"carbs,omitempty"`
	Fat      float64   `json:"fat,omitempty"`
	LoggedAt time.Time `json:"createdAt,omitempty"`
}

// ActivityEntry is a single logged workout.
type ActivityEntry struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Minutes  int       `json:"durationMinutes"`
	Calories float64   `json:"caloriesBurned"`
	LoggedAt time.Time `json:"createdAt,omitempty"`
}
