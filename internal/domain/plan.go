package domain

// WeeklyPlanEntry is one weekday of the focus plan.
type WeeklyPlanEntry struct {
	Day        string   `json:"day"`
	FocusAreas []string `json:"focus_areas"`
	EnergyTip  string   `json:"energy_tip"`
}

// WeeklyPlan holds seven entries, Monday first. A nil plan means "no plan".
type WeeklyPlan []WeeklyPlanEntry
