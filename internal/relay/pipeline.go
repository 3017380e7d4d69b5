package relay

import (
	"log"

	"github.com/google/uuid"

	"tgrelay/bot/internal/calendar"
	"tgrelay/bot/internal/logbook"
	"tgrelay/bot/internal/models"
)

// Pipeline processes one MessageEvent at a time: classify, format, dispatch,
// log, alert. No stage failure crosses back into the event loop; partial
// delivery is a normal outcome surfaced via log lines only.
type Pipeline struct {
	dispatcher *Dispatcher
	writer     *logbook.Writer
	alerts     *AlertScanner
}

// NewPipeline wires the per-message stages together.
func NewPipeline(dispatcher *Dispatcher, writer *logbook.Writer, alerts *AlertScanner) *Pipeline {
	return &Pipeline{dispatcher: dispatcher, writer: writer, alerts: alerts}
}

// Process runs the full pipeline for one event and returns the per-target
// delivery outcomes.
func (p *Pipeline) Process(ev models.MessageEvent) []Outcome {
	id := uuid.NewString()[:8] // correlation id for this dispatch

	cls := Classify(ev.Content)
	link := BuildLink(ev.ChatKind, ev.ChatHandle, ev.ChatID, ev.MessageID)
	stamp := calendar.Convert(ev.SentAt)
	rep := BuildReport(ev, cls, link, stamp)

	outcomes := p.dispatcher.Dispatch(rep, ev)
	for _, out := range outcomes {
		if out.ReportErr != nil {
			log.Printf("[%s] report delivery to %d failed: %v", id, out.Target, out.ReportErr)
		}
		if out.RelayErr != nil {
			log.Printf("[%s] message copy to %d failed: %v", id, out.Target, out.RelayErr)
		}
	}

	if err := p.writer.Append(rep, calendar.FileDate(ev.SentAt)); err != nil {
		log.Printf("[%s] log write for chat %s failed: %v", id, rep.ChatName, err)
	}

	if sent, err := p.alerts.Scan(ev, cls.Body); err != nil {
		log.Printf("[%s] keyword alert delivery failed: %v", id, err)
	} else if sent {
		log.Printf("[%s] keyword alert sent for message %d in chat %d", id, ev.MessageID, ev.ChatID)
	}

	return outcomes
}
