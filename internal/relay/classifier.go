// Package relay implements the message-relay pipeline: classification,
// report formatting, permalink building, fan-out delivery and keyword alerts.
package relay

import (
	"fmt"
	"strings"

	"tgrelay/bot/internal/models"
)

// Classify resolves a message's optional content fields into exactly one
// payload variant. A plain text body with no attachment wins; otherwise the
// first matching attachment in a fixed priority order (photo, video,
// document, audio, voice, sticker, video note); a captioned message whose
// attachment kind is unrecognized falls through to "other". The result is
// never empty: an event with no recognizable content classifies as "other".
func Classify(f models.ContentFields) models.ClassifiedMessage {
	if f.Text != "" && !hasAttachment(f) {
		return models.ClassifiedMessage{
			Payload: models.TextPayload{Body: f.Text},
			Body:    f.Text,
		}
	}

	if p := mediaPayload(f); p != nil {
		return models.ClassifiedMessage{
			Payload: p,
			Extra:   extraInfo(p),
			Body:    f.Caption,
		}
	}

	// A captioned message whose attachment kind is unrecognized lands here;
	// the attachment match above already covers any re-resolution, so the
	// caption rides along as the body of an "other" message.
	return models.ClassifiedMessage{
		Payload: models.OtherPayload{Caption: f.Caption},
		Body:    f.Caption,
	}
}

func hasAttachment(f models.ContentFields) bool {
	return f.HasPhoto || f.Video != nil || f.Document != nil || f.Audio != nil ||
		f.Voice != nil || f.VideoNote != nil || f.Sticker != nil || f.HasOtherAttachment
}

// mediaPayload matches attachment fields in priority order.
func mediaPayload(f models.ContentFields) models.ContentPayload {
	switch {
	case f.HasPhoto:
		return models.PhotoPayload{Caption: f.Caption}
	case f.Video != nil:
		return models.VideoPayload{Caption: f.Caption, Duration: f.Video.Duration, FileSize: f.Video.FileSize}
	case f.Document != nil:
		return models.DocumentPayload{Caption: f.Caption, FileName: f.Document.FileName, FileSize: f.Document.FileSize}
	case f.Audio != nil:
		return models.AudioPayload{Caption: f.Caption, Duration: f.Audio.Duration}
	case f.Voice != nil:
		return models.VoicePayload{Duration: f.Voice.Duration}
	case f.Sticker != nil:
		return models.StickerPayload{Emoji: f.Sticker.Emoji}
	case f.VideoNote != nil:
		return models.VideoNotePayload{Duration: f.VideoNote.Duration}
	}
	return nil
}

// extraInfo builds the compact annotation shown next to the category name.
func extraInfo(p models.ContentPayload) string {
	switch v := p.(type) {
	case models.VideoPayload:
		return durationSize(v.Duration, v.FileSize)
	case models.DocumentPayload:
		return durationSize(0, v.FileSize)
	case models.StickerPayload:
		return v.Emoji
	}
	return ""
}

func durationSize(duration int, size int64) string {
	var parts []string
	if duration > 0 {
		parts = append(parts, fmt.Sprintf("%ds", duration))
	}
	if size > 0 {
		parts = append(parts, fmt.Sprintf("%.1f KiB", float64(size)/1024))
	}
	return strings.Join(parts, ", ")
}
