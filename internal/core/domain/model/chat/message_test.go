package chat_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("should create message with valid inputs", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		sentAt := time.Now().UTC()

		message, err := chat.NewMessage(id, orderID, chat.Customer, "where are you?", sentAt)

		require.NoError(t, err)
		assert.True(t, message.ID().IsEqual(id))
		assert.True(t, message.AssignedOrderID().IsEqual(orderID))
		assert.Equal(t, chat.Customer, message.Sender())
		assert.Equal(t, "where are you?", message.Text())
		assert.Equal(t, sentAt, message.SentAt())
		require.NoError(t, message.Validate())
	})

	t.Run("should reject empty text", func(t *testing.T) {
		_, err := chat.NewMessage(kernel.NewUUID(), kernel.NewUUID(), chat.Courier, "", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid sender", func(t *testing.T) {
		_, err := chat.NewMessage(kernel.NewUUID(), kernel.NewUUID(), chat.UnknownSender, "hi", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := chat.NewMessage(kernel.NewUUID(), kernel.NewUUID(), chat.Courier, "hi", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var message chat.Message

		err := message.Validate()

		require.Error(t, err)
		assert.Equal(t, chat.ErrMessageIsNotConstructed, err)
	})
}

func TestSender(t *testing.T) {
	t.Run("parses wire form", func(t *testing.T) {
		sender, err := chat.SenderFromString("customer")
		require.NoError(t, err)
		assert.Equal(t, chat.Customer, sender)

		sender, err = chat.SenderFromString("courier")
		require.NoError(t, err)
		assert.Equal(t, chat.Courier, sender)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, input := range []string{"", "admin", "CUSTOMER", "system"} {
			_, err := chat.SenderFromString(input)
			require.Error(t, err, "input %q", input)
		}
	})

	t.Run("stringifies to wire form", func(t *testing.T) {
		assert.Equal(t, "customer", chat.Customer.String())
		assert.Equal(t, "courier", chat.Courier.String())
		assert.Equal(t, "unknown", chat.UnknownSender.String())
	})
}
