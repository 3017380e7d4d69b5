package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Courier implements the relay's outbound interface on top of the Bot API.
type Courier struct {
	bot *tgbotapi.BotAPI
}

// NewCourier wraps an authorized bot.
func NewCourier(bot *tgbotapi.BotAPI) *Courier {
	return &Courier{bot: bot}
}

// SendText sends plain text as a new message.
func (c *Courier) SendText(chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// Copy duplicates a message into another chat via copyMessage, which keeps
// the media payload but does not expose the original sender as the author.
func (c *Courier) Copy(dstChatID, srcChatID int64, messageID int) error {
	_, err := c.bot.Request(tgbotapi.NewCopyMessage(dstChatID, srcChatID, messageID))
	return err
}

// SendDocument uploads a local file as a document with an optional caption.
func (c *Courier) SendDocument(chatID int64, path, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	_, err := c.bot.Send(doc)
	return err
}
