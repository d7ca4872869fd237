package domain

type Effort string

const (
	EffortLight     Effort = "light"
	EffortModerate  Effort = "moderate"
	EffortIntensive Effort = "intensive"
)

// ValidEfforts is the canonical set of accepted effort tiers.
var ValidEfforts = map[Effort]bool{
	EffortLight: true, EffortModerate: true, EffortIntensive: true,
}

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

type TimerMode string

const (
	TimerFocus TimerMode = "focus"
	TimerBreak TimerMode = "break"
	TimerDeep  TimerMode = "deep"
)

// TimerModes lists timer modes in preset-key order (F1, F2, F3).
var TimerModes = []TimerMode{TimerFocus, TimerBreak, TimerDeep}
