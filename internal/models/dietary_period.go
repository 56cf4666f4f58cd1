package models

import "time"

const (
	ProtocolTimeRestricted      = "time_restricted"
	ProtocolMealTiming          = "meal_timing"
	ProtocolFoodRestricted      = "food_restricted"
	ProtocolIntermittentFasting = "intermittent_fasting"
	ProtocolPortionControl      = "portion_control"
	ProtocolFoodCombination     = "food_combination"
	ProtocolCustom              = "custom"
)

// DietaryPeriod marks a self-directed dietary experiment over a date range.
// EndDate is nil while the experiment is still running.
type DietaryPeriod struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	StartDate    time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date"`
	Name         string     `gorm:"not null" json:"name"`
	ProtocolType string     `gorm:"not null;default:custom" json:"protocol_type"`
	Description  string     `json:"description"`
	Notes        string     `json:"notes"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func IsValidProtocolType(value string) bool {
	switch value {
	case ProtocolTimeRestricted, ProtocolMealTiming, ProtocolFoodRestricted,
		ProtocolIntermittentFasting, ProtocolPortionControl, ProtocolFoodCombination,
		ProtocolCustom:
		return true
	default:
		return false
	}
}

type SuggestedProtocol struct {
	Type            string `json:"type"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	ExampleDuration string `json:"example_duration"`
}

func DefaultSuggestedProtocols() []SuggestedProtocol {
	return []SuggestedProtocol{
		{Type: ProtocolTimeRestricted, Name: "No Evening Eating After 7pm", Description: "Stop eating after 7pm to allow 12+ hour fasting overnight", ExampleDuration: "2-4 weeks"},
		{Type: ProtocolMealTiming, Name: "Morning Emphasis", Description: "Front-load calories: 40% breakfast, 40% lunch, 20% dinner", ExampleDuration: "3-4 weeks"},
		{Type: ProtocolTimeRestricted, Name: "Weekend-Only Evening Meals", Description: "Light dinners weekdays, normal dinners on weekends", ExampleDuration: "1 month"},
		{Type: ProtocolIntermittentFasting, Name: "Intermittent Fasting 16:8", Description: "Eat within 8-hour window (e.g., 12pm-8pm)", ExampleDuration: "2-3 weeks"},
		{Type: ProtocolFoodRestricted, Name: "Low-Carb Experiment", Description: "Reduce carbohydrates, increase protein and healthy fats", ExampleDuration: "3-4 weeks"},
		{Type: ProtocolPortionControl, Name: "Smaller Portions", Description: "Reduce all portion sizes by 20-30%", ExampleDuration: "2-3 weeks"},
		{Type: ProtocolFoodCombination, Name: "Protein With Every Meal", Description: "Include protein source at every meal for satiety", ExampleDuration: "3-4 weeks"},
		{Type: ProtocolFoodRestricted, Name: "Climate Friendly Diet", Description: "Plant-based meals prioritizing local, seasonal ingredients with minimal animal products", ExampleDuration: "3-4 weeks"},
	}
}
