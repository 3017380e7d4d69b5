package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tgrelay/bot/internal/models"
	"tgrelay/bot/internal/relay"
)

// TestClassifyTextOnly verifies that a plain text body with no attachment is
// always classified as text.
func TestClassifyTextOnly(t *testing.T) {
	cls := relay.Classify(models.ContentFields{Text: "hello there"})

	assert.Equal(t, models.CategoryText, cls.Category())
	assert.Equal(t, "hello there", cls.Body)
	assert.Empty(t, cls.Extra)
}

// TestClassifySingleMedia verifies each attachment kind maps to its category.
func TestClassifySingleMedia(t *testing.T) {
	tests := []struct {
		name   string
		fields models.ContentFields
		want   models.Category
	}{
		{"photo", models.ContentFields{HasPhoto: true}, models.CategoryPhoto},
		{"video", models.ContentFields{Video: &models.MediaMeta{}}, models.CategoryVideo},
		{"document", models.ContentFields{Document: &models.MediaMeta{}}, models.CategoryDocument},
		{"audio", models.ContentFields{Audio: &models.MediaMeta{}}, models.CategoryAudio},
		{"voice", models.ContentFields{Voice: &models.MediaMeta{}}, models.CategoryVoice},
		{"sticker", models.ContentFields{Sticker: &models.StickerMeta{}}, models.CategorySticker},
		{"video note", models.ContentFields{VideoNote: &models.MediaMeta{}}, models.CategoryVideoNote},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cls := relay.Classify(tc.fields)
			assert.Equal(t, tc.want, cls.Category())
		})
	}
}

// TestClassifyMediaPrecedence verifies the fixed priority order when several
// attachment fields are set at once.
func TestClassifyMediaPrecedence(t *testing.T) {
	fields := models.ContentFields{
		HasPhoto: true,
		Video:    &models.MediaMeta{Duration: 5},
		Sticker:  &models.StickerMeta{Emoji: "🎉"},
	}

	cls := relay.Classify(fields)
	assert.Equal(t, models.CategoryPhoto, cls.Category())
}

// TestClassifyCaptionedMedia verifies that a caption never overrides the
// attachment's category and is rendered as the body.
func TestClassifyCaptionedMedia(t *testing.T) {
	cls := relay.Classify(models.ContentFields{
		Caption:  "look at this",
		HasPhoto: true,
	})

	assert.Equal(t, models.CategoryPhoto, cls.Category())
	assert.Equal(t, "look at this", cls.Body)
}

// TestClassifyVideoExtraInfo verifies the duration/size annotation.
func TestClassifyVideoExtraInfo(t *testing.T) {
	cls := relay.Classify(models.ContentFields{
		Video: &models.MediaMeta{Duration: 12, FileSize: 353894},
	})

	assert.Equal(t, models.CategoryVideo, cls.Category())
	assert.Equal(t, "12s, 345.6 KiB", cls.Extra)

	// No duration or size known: annotation is omitted entirely.
	cls = relay.Classify(models.ContentFields{Video: &models.MediaMeta{}})
	assert.Empty(t, cls.Extra)
}

// TestClassifyDocumentExtraInfo verifies the size-only annotation.
func TestClassifyDocumentExtraInfo(t *testing.T) {
	cls := relay.Classify(models.ContentFields{
		Document: &models.MediaMeta{FileName: "report.pdf", FileSize: 1024},
	})

	assert.Equal(t, models.CategoryDocument, cls.Category())
	assert.Equal(t, "1.0 KiB", cls.Extra)
}

// TestClassifyStickerGlyph verifies the glyph is carried as extra info.
func TestClassifyStickerGlyph(t *testing.T) {
	cls := relay.Classify(models.ContentFields{Sticker: &models.StickerMeta{Emoji: "😀"}})

	assert.Equal(t, models.CategorySticker, cls.Category())
	assert.Equal(t, "😀", cls.Extra)
}

// TestClassifyUnrecognizedAttachment verifies that captioned attachments the
// relay does not distinguish classify as "other", never as "none".
func TestClassifyUnrecognizedAttachment(t *testing.T) {
	cls := relay.Classify(models.ContentFields{
		Caption:            "an animation",
		HasOtherAttachment: true,
	})

	assert.Equal(t, models.CategoryOther, cls.Category())
	assert.Equal(t, "an animation", cls.Body)
}

// TestClassifyCaptionWithoutAttachment verifies a bare caption still
// classifies as "other" with the caption as body.
func TestClassifyCaptionWithoutAttachment(t *testing.T) {
	cls := relay.Classify(models.ContentFields{Caption: "stray caption"})

	assert.Equal(t, models.CategoryOther, cls.Category())
	assert.Equal(t, "stray caption", cls.Body)
}

// TestClassifyEmptyEvent verifies an event with no recognizable content.
func TestClassifyEmptyEvent(t *testing.T) {
	cls := relay.Classify(models.ContentFields{})

	assert.Equal(t, models.CategoryOther, cls.Category())
	assert.Empty(t, cls.Body)
}
