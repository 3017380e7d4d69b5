// Package telegram handles the integration with the Telegram Bot API.
// It receives updates, converts them into pipeline events, and performs the
// outbound send/copy/document calls on behalf of the relay.
package telegram

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tgrelay/bot/internal/config"
	"tgrelay/bot/internal/models"
	"tgrelay/bot/internal/relay"
)

// Connect authorizes the bot against the Telegram API.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)
	return bot, nil
}

// BotService receives Telegram updates and routes accepted messages into the
// relay pipeline, one at a time.
type BotService struct {
	BotAPI   *tgbotapi.BotAPI
	Pipeline *relay.Pipeline
	Config   *config.Config
}

// NewBotService creates a BotService around an authorized bot.
func NewBotService(bot *tgbotapi.BotAPI, pipeline *relay.Pipeline, cfg *config.Config) *BotService {
	return &BotService{BotAPI: bot, Pipeline: pipeline, Config: cfg}
}

// Run is the main loop for receiving Telegram updates. It blocks until the
// updates channel closes.
func (s *BotService) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.BotAPI.GetUpdatesChan(u)

	for update := range updates {
		msg := update.Message
		if msg == nil {
			msg = update.ChannelPost
		}
		if msg == nil {
			continue
		}
		if !s.Config.SourceAllowed(msg.Chat.ID) {
			continue
		}
		s.Pipeline.Process(EventFromMessage(msg))
	}
}

// EventFromMessage converts a Telegram message into the pipeline's event
// shape. Missing optional attributes map to zero values; the pipeline
// resolves those to sentinels.
func EventFromMessage(msg *tgbotapi.Message) models.MessageEvent {
	ev := models.MessageEvent{
		ChatID:     msg.Chat.ID,
		ChatTitle:  msg.Chat.Title,
		ChatKind:   chatKind(msg.Chat.Type),
		ChatHandle: msg.Chat.UserName,
		MessageID:  msg.MessageID,
		SentAt:     msg.Time(),
		Content:    contentFields(msg),
	}

	if msg.From != nil {
		ev.SenderID = msg.From.ID
		ev.SenderName = userName(msg.From)
		ev.SenderHandle = msg.From.UserName
	}
	if msg.ViaBot != nil {
		ev.ViaBot = msg.ViaBot.UserName
	}
	if reply := msg.ReplyToMessage; reply != nil {
		ref := &models.ReplyRef{Text: extractMessageContent(reply)}
		if reply.From != nil {
			ref.SenderName = userName(reply.From)
		}
		ev.ReplyTo = ref
	}
	return ev
}

func chatKind(chatType string) models.ChatKind {
	switch chatType {
	case "group":
		return models.ChatGroup
	case "supergroup":
		return models.ChatSupergroup
	case "channel":
		return models.ChatChannel
	default:
		return models.ChatPrivate
	}
}

func userName(u *tgbotapi.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// extractMessageContent uniformly extracts text or a caption from a message.
func extractMessageContent(msg *tgbotapi.Message) string {
	if msg == nil {
		return ""
	}
	if msg.Text != "" {
		return msg.Text
	}
	return msg.Caption
}

func contentFields(msg *tgbotapi.Message) models.ContentFields {
	f := models.ContentFields{
		Text:     msg.Text,
		Caption:  msg.Caption,
		HasPhoto: msg.Photo != nil,
	}
	if msg.Video != nil {
		f.Video = &models.MediaMeta{Duration: msg.Video.Duration, FileSize: int64(msg.Video.FileSize)}
	}
	if msg.Document != nil {
		f.Document = &models.MediaMeta{FileName: msg.Document.FileName, FileSize: int64(msg.Document.FileSize)}
	}
	if msg.Audio != nil {
		f.Audio = &models.MediaMeta{Duration: msg.Audio.Duration, FileSize: int64(msg.Audio.FileSize)}
	}
	if msg.Voice != nil {
		f.Voice = &models.MediaMeta{Duration: msg.Voice.Duration, FileSize: int64(msg.Voice.FileSize)}
	}
	if msg.VideoNote != nil {
		f.VideoNote = &models.MediaMeta{Duration: msg.VideoNote.Duration}
	}
	if msg.Sticker != nil {
		f.Sticker = &models.StickerMeta{Emoji: msg.Sticker.Emoji}
	}
	if msg.Animation != nil || msg.Contact != nil || msg.Location != nil || msg.Poll != nil || msg.Dice != nil {
		f.HasOtherAttachment = true
	}
	return f
}
