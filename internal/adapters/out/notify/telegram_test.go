package notify

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestNewTelegramMessenger_EmptyToken_ReturnsError(t *testing.T) {
	_, err := NewTelegramMessenger("")
	require.Error(t, err)
}

func TestSendText_DeliversMessageToChat(t *testing.T) {
	bot := &fakeBot{}
	messenger := &TelegramMessenger{bot: bot}

	err := messenger.SendText(context.Background(), 420042, "order up for grabs")
	require.NoError(t, err)

	require.Len(t, bot.sent, 1)
	message, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(420042), message.ChatID)
	assert.Equal(t, "order up for grabs", message.Text)
}

func TestSendText_BotFailure_ReturnsError(t *testing.T) {
	messenger := &TelegramMessenger{bot: &fakeBot{err: errors.New("telegram unavailable")}}

	err := messenger.SendText(context.Background(), 420042, "order up for grabs")
	require.Error(t, err)
}

func TestSendText_CancelledContext_ReturnsWithoutSending(t *testing.T) {
	bot := &fakeBot{}
	messenger := &TelegramMessenger{bot: bot}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := messenger.SendText(ctx, 420042, "order up for grabs")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, bot.sent)
}
