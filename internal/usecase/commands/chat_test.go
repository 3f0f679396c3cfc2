//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"foodai-api/internal/domain/offer"
	"foodai-api/internal/pkg/locale"
	"foodai-api/internal/usecase/commands"
	queriesmock "foodai-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeAssistant records the system prompt it was called with.
type fakeAssistant struct {
	system string
	reply  string
	err    error
}

func (a *fakeAssistant) Complete(_ context.Context, system string, _ []commands.ChatMessage) (string, error) {
	a.system = system
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

func (a *fakeAssistant) Stream(_ context.Context, system string, _ []commands.ChatMessage, fn func(delta string) error) error {
	a.system = system
	if a.err != nil {
		return a.err
	}
	for _, word := range strings.Fields(a.reply) {
		if err := fn(word); err != nil {
			return err
		}
	}
	return nil
}

func TestChatCommands_Complete(t *testing.T) {
	msgs := []commands.ChatMessage{{Role: "user", Content: "Mistä halvin pizza?"}}

	t.Run("returns the assistant reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		offers := queriesmock.NewMockOfferQueries(ctrl)
		assistant := &fakeAssistant{reply: "Pizza Palacesta, 8 eurolla!"}
		cmd := commands.NewChatCommands(assistant, offers, locale.ForCode("fi"))

		msg, err := cmd.Complete(context.Background(), msgs, false)

		require.NoError(t, err)
		assert.Equal(t, "assistant", msg.Role)
		assert.Equal(t, "Pizza Palacesta, 8 eurolla!", msg.Content)
	})

	t.Run("offer context is embedded when requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		offers := queriesmock.NewMockOfferQueries(ctrl)
		offers.EXPECT().TopOffers(10).Return([]offer.Offer{
			{Title: "Kebab", RestaurantName: "Kebab House", City: "Helsinki", DiscountPercent: 40},
		}).Times(1)
		assistant := &fakeAssistant{reply: "ok"}
		cmd := commands.NewChatCommands(assistant, offers, locale.ForCode("fi"))

		_, err := cmd.Complete(context.Background(), msgs, true)

		require.NoError(t, err)
		assert.Contains(t, assistant.system, "NYKYISET TARJOUKSET")
		assert.Contains(t, assistant.system, "Kebab House")
	})

	t.Run("no context without the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		offers := queriesmock.NewMockOfferQueries(ctrl)
		assistant := &fakeAssistant{reply: "ok"}
		cmd := commands.NewChatCommands(assistant, offers, locale.ForCode("fi"))

		_, err := cmd.Complete(context.Background(), msgs, false)

		require.NoError(t, err)
		assert.NotContains(t, assistant.system, "NYKYISET TARJOUKSET")
	})

	t.Run("turkish locale gets the turkish prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		offers := queriesmock.NewMockOfferQueries(ctrl)
		assistant := &fakeAssistant{reply: "tamam"}
		cmd := commands.NewChatCommands(assistant, offers, locale.ForCode("tr"))

		_, err := cmd.Complete(context.Background(), msgs, false)

		require.NoError(t, err)
		assert.Contains(t, assistant.system, "FoodAI'nin asistanısın")
	})

	t.Run("upstream failure passes through as the sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		offers := queriesmock.NewMockOfferQueries(ctrl)
		assistant := &fakeAssistant{err: commands.ErrAssistantUnavailable}
		cmd := commands.NewChatCommands(assistant, offers, locale.ForCode("fi"))

		_, err := cmd.Complete(context.Background(), msgs, false)

		assert.ErrorIs(t, err, commands.ErrAssistantUnavailable)
	})
}

func TestChatCommands_Stream(t *testing.T) {
	msgs := []commands.ChatMessage{{Role: "user", Content: "hello"}}

	t.Run("relays every delta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		offers := queriesmock.NewMockOfferQueries(ctrl)
		assistant := &fakeAssistant{reply: "three word reply"}
		cmd := commands.NewChatCommands(assistant, offers, locale.ForCode("fi"))

		var got []string
		err := cmd.Stream(context.Background(), msgs, false, func(delta string) error {
			got = append(got, delta)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"three", "word", "reply"}, got)
	})

	t.Run("stream uses the short prompt variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		offers := queriesmock.NewMockOfferQueries(ctrl)
		assistant := &fakeAssistant{reply: "ok"}
		cmd := commands.NewChatCommands(assistant, offers, locale.ForCode("fi"))

		err := cmd.Stream(context.Background(), msgs, false, func(string) error { return nil })

		require.NoError(t, err)
		assert.Contains(t, assistant.system, "Vastaa lyhyesti ja ytimekkäästi.")
	})
}
