package domain

// AssistantContext is the snapshot handed to the response generator on
// every call. It is never stored by the generator.
type AssistantContext struct {
	Tasks   []Task
	Profile Profile
	Plan    WeeklyPlan
}

// AssistantResponse is the result of one assistant turn.
//
// UpdatedPlan is nil unless a matched category asked for a fresh plan.
// RecommendedTasks is nil when unset and an empty slice when set with nothing
// to recommend; in JSON that is null versus [].
type AssistantResponse struct {
	Reply            string     `json:"reply"`
	UpdatedPlan      WeeklyPlan `json:"updated_plan,omitempty"`
	RecommendedTasks []Task     `json:"recommended_tasks"`
	FollowUpPrompts  []string   `json:"follow_up_prompts,omitempty"`
}
