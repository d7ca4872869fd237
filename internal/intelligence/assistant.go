package intelligence

import (
	"math/rand"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/scheduler"
)

const (
	// maxRecommended caps RecommendedTasks.
	maxRecommended = 3

	// urgentWithinDays is the inclusive calendar-day horizon for urgent
	// tasks. Overdue tasks are always urgent.
	urgentWithinDays = 2
)

// IndexSource picks a uniformly random index in [0, n).
// *rand.Rand satisfies it.
type IndexSource interface {
	Intn(n int) int
}

// Clock returns the current time.
type Clock func() time.Time

// FixedIndex always returns the same index, clamped to the valid range.
type FixedIndex int

func (f FixedIndex) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}

// NewRandSource returns a seeded, reproducible IndexSource.
// The returned source is not safe for concurrent use.
func NewRandSource(seed int64) IndexSource {
	return rand.New(rand.NewSource(seed))
}

// globalRand uses the package-level math/rand source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Generator produces scripted assistant replies. It holds no conversation
// state; every call works from the context snapshot it is given.
type Generator struct {
	index IndexSource
	now   Clock
}

// Option configures a Generator.
type Option func(*Generator)

// WithIndexSource replaces the random snippet picker.
func WithIndexSource(src IndexSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.index = src
		}
	}
}

// WithClock replaces the time source used for urgency.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.now = c
		}
	}
}

// NewGenerator creates a Generator backed by math/rand and time.Now unless
// overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{index: globalRand{}, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// GenerateResponse runs one assistant turn with the real clock and a random
// snippet picker.
func GenerateResponse(message string, actx domain.AssistantContext) domain.AssistantResponse {
	return defaultGenerator.Respond(message, actx)
}

// Respond builds the reply for message. It never fails: a message that
// matches no category, including the empty string, gets the default reply.
func (g *Generator) Respond(message string, actx domain.AssistantContext) domain.AssistantResponse {
	lower := strings.ToLower(message)
	now := g.now()

	upcoming := scheduler.SortByDue(actx.Tasks)
	urgent := make([]domain.Task, 0, len(upcoming))
	for _, t := range upcoming {
		if domain.CalendarDaysUntil(t.Due, now) <= urgentWithinDays {
			urgent = append(urgent, t)
		}
	}

	var (
		segments     []string
		followUps    orderedSet
		regenerate   bool
		recommended  []domain.Task
		recommendSet bool
	)

	for _, r := range replyRules {
		if !r.matches(lower) {
			continue
		}
		segments = append(segments, r.segments(g)...)
		followUps.add(r.followUps...)
		if r.regeneratePlan {
			regenerate = true
		}
		if r.recommend != nil {
			recommended = r.recommend(upcoming)
			recommendSet = true
		}
	}

	if len(segments) == 0 {
		urgentBlock := aheadOfScheduleReply
		if len(urgent) > 0 {
			urgentBlock = urgentListHeader + "\n" + FormatTaskList(firstN(urgent, maxRecommended), now)
		}
		segments = append(segments,
			"Got it, "+actx.Profile.Name+". "+g.snippet(),
			urgentBlock,
			closingInvitation,
		)
		followUps.add(defaultBranchFollowUps...)
	}

	resp := domain.AssistantResponse{
		Reply: strings.Join(segments, "\n\n"),
	}

	if regenerate {
		resp.UpdatedPlan = scheduler.BuildWeeklyPlan(actx.Tasks)
	}

	if !recommendSet && len(segments) > 0 {
		if len(urgent) > 0 {
			recommended = firstN(urgent, maxRecommended)
		} else {
			recommended = firstN(upcoming, maxRecommended)
		}
	}
	resp.RecommendedTasks = recommended

	if followUps.len() > 0 {
		resp.FollowUpPrompts = followUps.items()
	} else {
		resp.FollowUpPrompts = DefaultFollowUps()[:fallbackPromptCount]
	}

	return resp
}

func (g *Generator) snippet() string {
	return motivationalSnippets[g.index.Intn(len(motivationalSnippets))]
}

// firstN returns at most n leading elements. A non-nil input yields a
// non-nil result.
func firstN(tasks []domain.Task, n int) []domain.Task {
	if len(tasks) > n {
		return tasks[:n]
	}
	return tasks
}

// orderedSet keeps first-insertion order and drops duplicates.
type orderedSet struct {
	seen  map[string]bool
	order []string
}

func (s *orderedSet) add(vals ...string) {
	for _, v := range vals {
		if s.seen == nil {
			s.seen = make(map[string]bool)
		}
		if s.seen[v] {
			continue
		}
		s.seen[v] = true
		s.order = append(s.order, v)
	}
}

func (s *orderedSet) len() int { return len(s.order) }

func (s *orderedSet) items() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
