// Package notify implements the notification ports: a Telegram messenger
// channel, an SMTP email channel, and the dispatcher that fans an assignment
// offer out across them.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dispatch/internal/pkg/errs"
)

// botClient is the slice of the Telegram bot API the messenger needs.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramMessenger delivers texts to a courier's Telegram chat.
type TelegramMessenger struct {
	bot botClient
}

// NewTelegramMessenger creates a messenger authorized with the given bot
// token.
func NewTelegramMessenger(token string) (*TelegramMessenger, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorize telegram bot: %w", err)
	}

	return &TelegramMessenger{bot: bot}, nil
}

// SendText sends a plain text message to the given chat.
func (m *TelegramMessenger) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := m.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send telegram message to chat %d: %w", chatID, err)
	}
	return nil
}
