package relay

import (
	"fmt"
	"strings"

	"tgrelay/bot/internal/models"
)

// AlertScanner watches message text for sensitive keywords and forwards a
// single alert to a designated chat on match.
type AlertScanner struct {
	courier  Courier
	chatID   int64
	keywords []string
}

// NewAlertScanner creates a scanner for the given keyword set. A zero chatID
// disables the scanner. Matching is a case-insensitive substring test.
func NewAlertScanner(courier Courier, chatID int64, keywords []string) *AlertScanner {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			lowered = append(lowered, kw)
		}
	}
	return &AlertScanner{courier: courier, chatID: chatID, keywords: lowered}
}

// Scan dispatches at most one alert for the given text. It reports whether an
// alert was sent, and the delivery error if sending it failed.
func (a *AlertScanner) Scan(ev models.MessageEvent, text string) (bool, error) {
	if a.chatID == 0 || text == "" {
		return false, nil
	}
	lowered := strings.ToLower(text)
	for _, kw := range a.keywords {
		if strings.Contains(lowered, kw) {
			alert := fmt.Sprintf("⚠️ Keyword alert from %s:\n%s", ev.SenderLabel(), text)
			return true, a.courier.SendText(a.chatID, alert)
		}
	}
	return false, nil
}
