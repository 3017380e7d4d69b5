package relay

import (
	"fmt"
	"strconv"
	"strings"

	"tgrelay/bot/internal/models"
)

// NoLink is the sentinel used when no permalink can be derived.
const NoLink = "no link"

// BuildLink derives a best-effort permalink to a message. Chats with a public
// handle get the t.me/<handle> form; supergroups and channels without one get
// the internal t.me/c/ form, stripping the "-100" marker (or a bare minus)
// from the chat id. Private chats, and ids that strip to nothing, have no
// link.
func BuildLink(kind models.ChatKind, handle string, chatID int64, messageID int) string {
	if handle != "" {
		return fmt.Sprintf("https://t.me/%s/%d", handle, messageID)
	}
	if kind != models.ChatSupergroup && kind != models.ChatChannel {
		return NoLink
	}

	raw := strconv.FormatInt(chatID, 10)
	internal := strings.TrimPrefix(raw, "-100")
	if internal == raw {
		internal = strings.TrimPrefix(raw, "-")
	}
	if internal == "" {
		return NoLink
	}
	return fmt.Sprintf("https://t.me/c/%s/%d", internal, messageID)
}
