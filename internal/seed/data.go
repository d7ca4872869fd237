// Package seed holds the demo semester: Jordan's profile, five pinned
// tasks, the welcome message and the static panels shown around them.
package seed

import (
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
)

// WelcomeMessage is the assistant's first line in a fresh history.
const WelcomeMessage = "Hey Jordan, Aurora here. I pulled the tasks you pinned and lined them up by urgency. Ready for a focus block or should we refresh the weekly map?"

// WelcomeMessageID is fixed so a reseed replaces rather than duplicates it.
const WelcomeMessageID = "welcome"

// dueHour is the local hour every demo task falls due.
const dueHour = 9

func Profile() domain.Profile {
	return domain.Profile{
		Name:         "Jordan",
		SemesterWeek: 6,
		Goals:        []string{"Maintain A- average", "Secure summer internship", "Build stronger debug strategies"},
		Strengths:    []string{"Pattern recognition", "Visual note taking", "Team facilitation"},
	}
}

type taskTemplate struct {
	id      string
	course  string
	title   string
	offset  int
	effort  domain.Effort
	minutes int
}

var taskTemplates = []taskTemplate{
	{"algorithms-problem-set", "Algorithms II", "Dynamic programming practice set", 1, domain.EffortIntensive, 110},
	{"psych-reflection", "Cognitive Psychology", "Reflection journal on memory case study", 2, domain.EffortModerate, 55},
	{"systems-lab", "Systems Programming Lab", "Threading bug hunt recap", 0, domain.EffortModerate, 80},
	{"calc-quiz", "Applied Calculus", "Quiz prep: multivariate optimization", 3, domain.EffortLight, 40},
	{"capstone-outline", "Capstone Studio", "Storyboard outline for midterm showcase", 5, domain.EffortIntensive, 120},
}

// Tasks returns the demo tasks, each due at 09:00 in now's location on its
// day offset from now.
func Tasks(now time.Time) []domain.Task {
	y, m, d := now.Date()
	tasks := make([]domain.Task, 0, len(taskTemplates))
	for _, tt := range taskTemplates {
		tasks = append(tasks, domain.Task{
			ID:               tt.id,
			Course:           tt.course,
			Title:            tt.title,
			Due:              time.Date(y, m, d+tt.offset, dueHour, 0, 0, 0, now.Location()),
			Effort:           tt.effort,
			EstimatedMinutes: tt.minutes,
		})
	}
	return tasks
}

// QuickPrompts are the always-available one-tap questions.
func QuickPrompts() []string {
	return []string{
		"Map a 45-minute focus sprint for Algorithms.",
		"Break systems lab debugging into checkpoints.",
		"Help me prep cognitive psych flashcards.",
		"Suggest reflection prompts for today's study.",
		"Design a balanced study day around class times.",
	}
}

func Resources() []domain.Resource {
	return []domain.Resource{
		{
			Title:       "Active Recall Sprint Template",
			Description: "3-step method to convert lecture notes into fast recall reps.",
			URL:         "https://collegeinfogeek.com/spaced-repetition-memory-techniques/",
			Tag:         "Focus Strategy",
		},
		{
			Title:       "Algorithms Visual Playground",
			Description: "Animate graphs, DP tables, and recursion trees for intuition boosts.",
			URL:         "https://visualgo.net/en",
			Tag:         "Interactive",
		},
		{
			Title:       "Systems Debug Playbook",
			Description: "Structured checklist for isolating threading issues quickly.",
			URL:         "https://github.com/mr-mig/every-programmer-should-know",
			Tag:         "Tooling",
		},
		{
			Title:       "Reflective Journal Prompts",
			Description: "Guided prompts that reinforce metacognition after study blocks.",
			URL:         "https://www.reflection.app/",
			Tag:         "Wellbeing",
		},
	}
}

func Achievements() []domain.Achievement {
	return []domain.Achievement{
		{Title: "Consistent streak", Detail: "5 focus sessions logged this week"},
		{Title: "Deep work wins", Detail: "Completed 3/4 priority tasks on time"},
		{Title: "Course balance", Detail: "Allocated time to every class this week"},
	}
}
