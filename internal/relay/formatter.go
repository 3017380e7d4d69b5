package relay

import (
	"fmt"
	"strings"

	"tgrelay/bot/internal/calendar"
	"tgrelay/bot/internal/models"
)

// ReplyPreviewLimit caps the reply-context preview, in runes.
const ReplyPreviewLimit = 120

const (
	sentinelNone    = "none"
	sentinelUnknown = "unknown"
)

// BuildReport assembles the fixed-schema report for one classified message.
// Every optional field has a sentinel fallback, so formatting never fails.
func BuildReport(ev models.MessageEvent, cls models.ClassifiedMessage, link string, stamp calendar.Stamp) models.Report {
	category := string(cls.Category())
	if cls.Extra != "" {
		category = fmt.Sprintf("%s (%s)", category, cls.Extra)
	}

	var b strings.Builder
	b.WriteString("📩 Message from:\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", ev.SenderLabel())
	fmt.Fprintf(&b, "🆔 ID: %d\n", ev.SenderID)
	fmt.Fprintf(&b, "🔗 Username: %s\n", handleOr(ev.SenderHandle, sentinelNone))
	fmt.Fprintf(&b, "👥 Chat: %s\n", ev.ChatLabel())
	fmt.Fprintf(&b, "📌 Type: %s\n", category)

	// Body block: labelled "Text" for text messages, "Caption" for captioned
	// media. Pure-media messages without a caption have no body block.
	switch {
	case cls.Category() == models.CategoryText:
		fmt.Fprintf(&b, "📝 Text:\n%s\n", cls.Body)
	case cls.Body != "":
		fmt.Fprintf(&b, "📎 Caption:\n%s\n", cls.Body)
	}

	fmt.Fprintf(&b, "📱 Client: %s\n", handleOr(ev.ViaBot, sentinelUnknown))
	fmt.Fprintf(&b, "↩️ Reply to: %s\n", replyLine(ev.ReplyTo))
	fmt.Fprintf(&b, "🔗 Link: %s\n", link)
	fmt.Fprintf(&b, "🕒 Date: %s %s", stamp.Date, stamp.Clock)

	return models.Report{
		Text:     b.String(),
		Category: cls.Category(),
		ChatName: ev.ChatLabel(),
	}
}

func handleOr(handle, sentinel string) string {
	if handle == "" {
		return sentinel
	}
	return "@" + handle
}

func replyLine(ref *models.ReplyRef) string {
	if ref == nil {
		return sentinelNone
	}
	line := strings.TrimSpace(ref.SenderName)
	if line == "" {
		line = sentinelUnknown
	}
	if preview := TruncatePreview(ref.Text, ReplyPreviewLimit); preview != "" {
		line = fmt.Sprintf("%s: %s", line, preview)
	}
	return line
}

// TruncatePreview caps text at budget runes; over-budget text is cut to
// budget-3 runes with an ellipsis appended.
func TruncatePreview(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return string(runes[:budget-3]) + "..."
}
