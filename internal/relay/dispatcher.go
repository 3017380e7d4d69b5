package relay

import (
	"tgrelay/bot/internal/models"
)

// Courier is the outbound slice of the messaging client consumed by the
// relay. Implementations perform the actual Telegram API calls.
type Courier interface {
	// SendText sends plain text as a new message.
	SendText(chatID int64, text string) error
	// Copy duplicates a message's content into another chat, preserving its
	// media payload without exposing the original sender as the author.
	Copy(dstChatID, srcChatID int64, messageID int) error
	// SendDocument uploads a local file as a document with an optional caption.
	SendDocument(chatID int64, path, caption string) error
}

// Outcome records the result of delivering one message to one target.
type Outcome struct {
	Target    int64
	ReportErr error
	RelayErr  error
}

// OK reports whether both delivery steps for the target succeeded.
func (o Outcome) OK() bool {
	return o.ReportErr == nil && o.RelayErr == nil
}

// Dispatcher fans a report out to the configured destination chats.
type Dispatcher struct {
	courier Courier
	targets []int64
}

// NewDispatcher creates a Dispatcher delivering to the given chat ids.
func NewDispatcher(courier Courier, targets []int64) *Dispatcher {
	return &Dispatcher{courier: courier, targets: targets}
}

// Dispatch sends the report to every target, and for non-text messages also
// copies the original message's content. Targets are independent: a failure
// at one never prevents delivery attempts to the rest, and for a single
// target the report is always sent before the copy. No retries are made;
// the caller inspects the returned outcomes.
func (d *Dispatcher) Dispatch(rep models.Report, ev models.MessageEvent) []Outcome {
	outcomes := make([]Outcome, 0, len(d.targets))
	for _, target := range d.targets {
		out := Outcome{Target: target}
		out.ReportErr = d.courier.SendText(target, rep.Text)
		if rep.Category != models.CategoryText {
			out.RelayErr = d.courier.Copy(target, ev.ChatID, ev.MessageID)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}
