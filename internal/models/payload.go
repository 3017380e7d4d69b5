package models

// ContentPayload is the closed set of message content variants. Each case
// carries only the fields relevant to its category, so downstream code never
// probes optional attributes again.
type ContentPayload interface {
	Category() Category
}

type TextPayload struct{ Body string }

type PhotoPayload struct{ Caption string }

type VideoPayload struct {
	Caption  string
	Duration int
	FileSize int64
}

type DocumentPayload struct {
	Caption  string
	FileName string
	FileSize int64
}

type AudioPayload struct {
	Caption  string
	Duration int
}

type VoicePayload struct{ Duration int }

type StickerPayload struct{ Emoji string }

type VideoNotePayload struct{ Duration int }

// OtherPayload stands in for attachment kinds the relay does not distinguish.
type OtherPayload struct{ Caption string }

func (TextPayload) Category() Category      { return CategoryText }
func (PhotoPayload) Category() Category     { return CategoryPhoto }
func (VideoPayload) Category() Category     { return CategoryVideo }
func (DocumentPayload) Category() Category  { return CategoryDocument }
func (AudioPayload) Category() Category     { return CategoryAudio }
func (VoicePayload) Category() Category     { return CategoryVoice }
func (StickerPayload) Category() Category   { return CategorySticker }
func (VideoNotePayload) Category() Category { return CategoryVideoNote }
func (OtherPayload) Category() Category     { return CategoryOther }

// ClassifiedMessage is the classifier's verdict on one MessageEvent.
type ClassifiedMessage struct {
	Payload ContentPayload
	// Extra is a category-specific annotation (duration/size for video and
	// document, glyph for sticker). Empty when nothing is known.
	Extra string
	// Body is the text rendered into the report: the text body for text
	// messages, the caption for media messages, empty otherwise.
	Body string
}

// Category returns the category of the underlying payload.
func (c ClassifiedMessage) Category() Category {
	return c.Payload.Category()
}

// Report is a formatted message report together with the structured fields
// the log writer keys on.
type Report struct {
	Text     string
	Category Category
	ChatName string
}
