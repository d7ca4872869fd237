package intelligence

var motivationalSnippets = []string{
	"You've already proven you can handle tough courses—let's re-use the focus systems that worked before.",
	"Small, consistent study blocks beat last-minute marathons. You're building long-term gains.",
	"Each assignment you close today frees up more time for deep work later this week.",
	"Momentum matters. Shine on one task, then use that confidence to tackle the next.",
	"Remember to log quick reflections after study blocks; it locks in growth for the next session.",
}

var focusPrompts = []string{
	"Draft me a 30-minute focus plan for algorithms.",
	"Turn my discrete math notes into a 3-question self-quiz.",
	"Suggest active recall prompts for the psychology chapter on memory.",
	"Split tonight's reading into micro-goals with break suggestions.",
	"Help me prepare for a peer study session tomorrow.",
}

const (
	aheadOfScheduleReply = "You're slightly ahead—perfect moment to bank progress on conceptual reviews."
	urgentListHeader     = "Your most time-sensitive tasks:"
	closingInvitation    = "If you give me course details or time blocks, I can route them into the weekly planner instantly."
)

var defaultBranchFollowUps = []string{
	"Draft a 45-minute focus menu.",
	"Which concept should I teach back to reinforce it?",
}

// fallbackPromptCount is how many focus prompts stand in when no rule
// contributed a follow-up.
const fallbackPromptCount = 3

// DefaultFollowUps returns every focus prompt, for display before the
// first assistant turn.
func DefaultFollowUps() []string {
	out := make([]string, len(focusPrompts))
	copy(out, focusPrompts)
	return out
}
