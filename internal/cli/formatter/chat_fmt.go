package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
)

// AssistantName labels assistant messages.
const AssistantName = "Aurora"

// SpeakerLabel returns the styled name for a chat role.
func SpeakerLabel(role domain.Role) string {
	if role == domain.RoleAssistant {
		return StyleGreen.Bold(true).Render(AssistantName)
	}
	return StyleBlue.Bold(true).Render("You")
}

// FormatMessage renders one chat message with its speaker and timestamp.
func FormatMessage(m domain.ChatMessage) string {
	return fmt.Sprintf("%s %s\n%s",
		SpeakerLabel(m.Role),
		Dim(m.CreatedAt.Local().Format(ChatTimeLayout)),
		m.Content,
	)
}

// FormatHistory renders the conversation oldest first.
func FormatHistory(msgs []domain.ChatMessage) string {
	var b strings.Builder
	b.WriteString(Header("Conversation"))
	b.WriteString("\n")
	if len(msgs) == 0 {
		b.WriteString(Dim("No messages yet. Try: aurora ask \"plan my week\""))
		b.WriteString("\n")
		return b.String()
	}
	for _, m := range msgs {
		b.WriteString("\n")
		b.WriteString(FormatMessage(m))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatRecommendations renders the recommended-task panel. It returns ""
// when there is nothing to show.
func FormatRecommendations(tasks []domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return ""
	}
	cards := make([]string, 0, len(tasks))
	for _, t := range tasks {
		cards = append(cards, FormatTaskCard(t, now))
	}
	return RenderBox("Recommended next", strings.Join(cards, "\n\n"))
}

// FormatFollowUps renders numbered follow-up prompts.
func FormatFollowUps(prompts []string) string {
	if len(prompts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Try next"))
	b.WriteString("\n")
	for i, p := range prompts {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render(fmt.Sprintf("%d.", i+1)), p))
	}
	return b.String()
}

// FormatCategories renders matched keyword categories as a dim tag line.
func FormatCategories(categories []string) string {
	if len(categories) == 0 {
		return Dim("matched: general")
	}
	return Dim("matched: " + strings.Join(categories, ", "))
}
