package notify

import (
	"fmt"

	"complainthub/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramNotifier pushes a one-line alert about every new complaint to
// an admin chat. Optional; constructed only when a bot token is set.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	Log    *zap.SugaredLogger
}

func NewTelegramNotifier(token string, chatID int64, log *zap.SugaredLogger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, Log: log}, nil
}

func (n *TelegramNotifier) ComplaintSubmitted(c *models.Complaint) {
	text := fmt.Sprintf("New %s priority complaint: %s (%s) from %s",
		c.Priority, c.Title, c.Type, c.StudentName)

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.Log.Warnw("telegram alert failed", "error", err)
	}
}
