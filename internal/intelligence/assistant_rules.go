package intelligence

import (
	"strings"

	"github.com/alexanderramin/aurora/internal/domain"
)

// replyRule is one keyword category. Every rule is checked against every
// message; several may fire for the same message and their blocks are
// appended in table order.
type replyRule struct {
	name     string
	keywords []string

	// lines is the fixed reply block; compose overrides it when set.
	lines   []string
	compose func(g *Generator) []string

	followUps      []string
	regeneratePlan bool

	// recommend picks tasks from the due-sorted list when the rule fires.
	recommend func(upcoming []domain.Task) []domain.Task
}

func (r replyRule) matches(lower string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (r replyRule) segments(g *Generator) []string {
	if r.compose != nil {
		return r.compose(g)
	}
	return r.lines
}

// Category names, in evaluation order.
const (
	CategorySchedule   = "schedule"
	CategoryExam       = "exam"
	CategoryOverwhelm  = "overwhelm"
	CategoryBreak      = "break"
	CategoryMotivation = "motivation"
	CategoryResources  = "resources"
	CategoryReflect    = "reflect"
)

var replyRules = []replyRule{
	{
		name:     CategorySchedule,
		keywords: []string{"schedule", "plan"},
		lines: []string{
			"Here's a refreshed game plan so you always know what's next:",
			"• Anchor two deep-focus blocks early in the day (before 1pm) when your energy is most stable.",
			"• Stack lighter review or discussion prep for evenings, ideally right after dinner while motivation is still high.",
			"• Close each block by logging a one-sentence reflection—this locks in retention and surfaces gaps for tomorrow.",
		},
		followUps: []string{
			"Can you tighten the schedule around work or club commitments?",
			"Suggest small checkpoints for the longest task.",
		},
		regeneratePlan: true,
	},
	{
		name:     CategoryExam,
		keywords: []string{"exam", "quiz", "test"},
		lines: []string{
			"Let's activate exam mode:",
			"• Start with a 20-question active recall burst—fast reps identify weak spots instantly.",
			"• Convert tricky problems into spaced flashcards and schedule a second review within 48 hours.",
			"• Finish with a short teach-back recap; explaining the concept out loud locks the neural pathways.",
		},
		followUps:      []string{"Build spaced recall prompts for the exam topics."},
		regeneratePlan: true,
		recommend:      recommendExamTasks,
	},
	{
		name:     CategoryOverwhelm,
		keywords: []string{"overwhelm", "stress", "burn out", "burnout", "tired"},
		lines: []string{
			"Overwhelm acknowledged—we pivot into a calmer cadence:",
			"• Swap in a 25 minute focus sprint followed by a 5 minute decompression walk.",
			"• Park all future worries in a quick brain dump; you can triage them after the next block.",
			"• Close the day with a gentle win: finish a micro-task that takes <15 minutes to rebuild confidence.",
		},
		followUps: []string{"Guide me through a grounded breathing exercise."},
	},
	{
		// Plain substring match: "breakthrough" and "heartbreak" fire too.
		name:     CategoryBreak,
		keywords: []string{"break"},
		lines: []string{
			"Break strategy coming right up:",
			"• Step away from the screen and hydrate; water plus movement resets neural fatigue.",
			"• Do a 90-second box breathing cycle (inhale for 4, hold for 4, exhale for 4, hold for 4).",
			"• When you sit back down, jot the next micro-step so re-entry feels frictionless.",
		},
	},
	{
		name:     CategoryMotivation,
		keywords: []string{"motivate", "motivation"},
		compose: func(g *Generator) []string {
			return []string{"Motivation boost:", g.snippet()}
		},
	},
	{
		name:     CategoryResources,
		keywords: []string{"resources", "help", "how to"},
		lines: []string{
			"Hand-picked resources that match your learning style:",
			"• Crash Course CS playlists—fast visual refreshers before deeper dives.",
			"• MIT OpenCourseWare practice sets for spaced repetition reps.",
			"• Cornell note templates: structure note-taking so future reviews are a breeze.",
			"• Use the Labs cheatsheet in the Resources panel to quickly locate debugger and tooling tips.",
		},
		followUps: []string{"Share more bite-sized video explainers."},
	},
	{
		name:     CategoryReflect,
		keywords: []string{"reflect", "journal"},
		lines: []string{
			"Reflection prompts so you capture the learning:",
			"1. What unlocked clarity today?",
			"2. Where did you feel friction, and what will you try next time?",
			"3. Which concept should future-you revisit this week?",
		},
	},
}

// recommendExamTasks prefers the nearest non-light tasks and falls back to
// the nearest tasks of any effort.
func recommendExamTasks(upcoming []domain.Task) []domain.Task {
	heavy := make([]domain.Task, 0, len(upcoming))
	for _, t := range upcoming {
		if t.Effort != domain.EffortLight {
			heavy = append(heavy, t)
		}
	}
	if len(heavy) > 0 {
		return firstN(heavy, maxRecommended)
	}
	return firstN(upcoming, maxRecommended)
}

// Categories reports which keyword categories message triggers, in
// evaluation order. An empty result means the default reply applies.
func Categories(message string) []string {
	lower := strings.ToLower(message)
	var names []string
	for _, r := range replyRules {
		if r.matches(lower) {
			names = append(names, r.name)
		}
	}
	return names
}
