package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contentmocks "imagevault/internal/contentapi/mocks"
	app_errors "imagevault/internal/errors"
	"imagevault/internal/model"
	"imagevault/internal/service"
)

func TestChatbotService_HandleMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves and assembles", func(t *testing.T) {
		client := contentmocks.NewMockClient(t)
		svc := service.NewChatbotService(client)
		items := []model.FileItem{{ID: 1}, {ID: 2}, {ID: 3}}
		client.On("AllImages", mock.Anything, "k").Return(items).Once()

		reply := svc.HandleMessage(ctx, "k", "show all images")

		assert.Equal(t, model.ReplyImages, reply.Type)
		assert.Equal(t, items, reply.Data)
	})

	t.Run("Nothing found", func(t *testing.T) {
		client := contentmocks.NewMockClient(t)
		svc := service.NewChatbotService(client)
		client.On("Search", mock.Anything, "k", "xyzzy nonsense query").Return([]model.FileItem{}).Once()

		reply := svc.HandleMessage(ctx, "k", "xyzzy nonsense query")

		assert.Equal(t, model.ReplyText, reply.Type)
		assert.Contains(t, reply.Message, "Try:")
	})
}

func TestChatbotService_VerifyKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		client := contentmocks.NewMockClient(t)
		client.On("VerifyKey", ctx, "k").Return(true, nil).Once()

		valid, err := service.NewChatbotService(client).VerifyKey(ctx, "k")

		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Service down", func(t *testing.T) {
		client := contentmocks.NewMockClient(t)
		client.On("VerifyKey", ctx, "k").Return(false, errors.New("connection refused")).Once()

		valid, err := service.NewChatbotService(client).VerifyKey(ctx, "k")

		assert.False(t, valid)
		assert.ErrorIs(t, err, app_errors.ErrInternal)
	})
}
