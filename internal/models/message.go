package models

import (
	"strconv"
	"strings"
	"time"
)

// ChatKind is the visibility class of a Telegram chat.
type ChatKind string

const (
	ChatPrivate    ChatKind = "private"
	ChatGroup      ChatKind = "group"
	ChatSupergroup ChatKind = "supergroup"
	ChatChannel    ChatKind = "channel"
)

// Category is the content kind of a classified message.
type Category string

const (
	CategoryText      Category = "text"
	CategoryPhoto     Category = "photo"
	CategoryVideo     Category = "video"
	CategoryDocument  Category = "document"
	CategoryAudio     Category = "audio"
	CategoryVoice     Category = "voice"
	CategorySticker   Category = "sticker"
	CategoryVideoNote Category = "video_note"
	CategoryOther     Category = "other"
)

// MediaMeta carries the optional duration/size/name attributes of an attachment.
type MediaMeta struct {
	Duration int   // seconds, 0 when unknown
	FileSize int64 // bytes, 0 when unknown
	FileName string
}

// StickerMeta carries the sticker attributes used in reports.
type StickerMeta struct {
	Emoji string
}

// ContentFields mirrors the platform's optional message attributes. At most a
// few of them are set on any real message; the classifier resolves them into
// a single ContentPayload.
type ContentFields struct {
	Text    string
	Caption string

	HasPhoto  bool
	Video     *MediaMeta
	Document  *MediaMeta
	Audio     *MediaMeta
	Voice     *MediaMeta
	VideoNote *MediaMeta
	Sticker   *StickerMeta

	// HasOtherAttachment marks attachment kinds the relay does not
	// distinguish (animations, polls, locations, contacts).
	HasOtherAttachment bool
}

// ReplyRef identifies the message an event replies to.
type ReplyRef struct {
	SenderName string
	Text       string
}

// MessageEvent is one inbound unit of work delivered by the Telegram client.
// It is immutable for the duration of a pipeline dispatch.
type MessageEvent struct {
	ChatID     int64
	ChatTitle  string
	ChatKind   ChatKind
	ChatHandle string

	SenderID     int64
	SenderName   string
	SenderHandle string

	MessageID int
	SentAt    time.Time

	Content ContentFields
	ReplyTo *ReplyRef
	ViaBot  string
}

// ChatLabel returns the chat title, falling back to the numeric chat id.
func (e MessageEvent) ChatLabel() string {
	if e.ChatTitle != "" {
		return e.ChatTitle
	}
	return strconv.FormatInt(e.ChatID, 10)
}

// SenderLabel returns the trimmed sender display name, or "unknown".
func (e MessageEvent) SenderLabel() string {
	name := strings.TrimSpace(e.SenderName)
	if name == "" {
		return "unknown"
	}
	return name
}
