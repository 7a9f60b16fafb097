package fbbotw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendTextMessage_Payload(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	_, err := client.SendTextMessage(context.Background(), "123", "Hi. How are you doing today?")
	require.NoError(t, err)

	req := rec.request(0)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/v3.1/me/messages", req.Path)
	assert.Equal(t, map[string]any{
		"recipient":      map[string]any{"id": "123"},
		"messaging_type": "RESPONSE",
		"message":        map[string]any{"text": "Hi. How are you doing today?"},
	}, req.Body)
}

func TestSendTextMessage_NoTagByDefault(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	_, err := client.SendTextMessage(context.Background(), "123", "hi",
		WithMessagingType(MessagingTypeUpdate))
	require.NoError(t, err)

	body := rec.request(0).Body
	assert.Equal(t, "UPDATE", body["messaging_type"])
	assert.NotContains(t, body, "tag")
}

func TestSendTextMessage_TagIncludedWhenSupplied(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	_, err := client.SendTextMessage(context.Background(), "123", "hi",
		WithTag("CONFIRMED_EVENT_UPDATE"))
	require.NoError(t, err)

	assert.Equal(t, "CONFIRMED_EVENT_UPDATE", rec.request(0).Body["tag"])
}

func TestSendTextMessage_TagIncludedForMessageTagType(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	_, err := client.SendTextMessage(context.Background(), "123", "hi",
		WithMessagingType(MessagingTypeTag))
	require.NoError(t, err)

	// The tag key must be present even without an explicit tag value.
	body := rec.request(0).Body
	assert.Contains(t, body, "tag")
	assert.Equal(t, "MESSAGE_TAG", body["messaging_type"])
}

func TestSendTextList_OrderAndLength(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	results := client.SendTextList(context.Background(), "123", []string{"a", "b", "c"})

	require.Len(t, results, 3)
	require.Equal(t, 3, rec.count())
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, results[i].Text)
		require.NoError(t, results[i].Err)
		msg := rec.request(i).Body["message"].(map[string]any)
		assert.Equal(t, want, msg["text"])
	}
}

func TestSendTextList_FailureDoesNotHaltBatch(t *testing.T) {
	t.Setenv(EnvAccessToken, "")
	rec := &requestRecorder{}
	client := newTestClient(t, rec)
	// Drop the static token so every item fails at credential resolution.
	client.sources = []TokenSource{&EnvTokenSource{}}

	results := client.SendTextList(context.Background(), "123", []string{"a", "b", "c"})

	require.Len(t, results, 3, "one result per input, failures included")
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, results[i].Text)
		assert.ErrorIs(t, results[i].Err, ErrMissingAccessToken)
	}
	assert.Equal(t, 0, rec.count())
}

func TestSendSenderAction_Payload(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	_, err := client.SendSenderAction(context.Background(), "123", SenderActionTypingOn)
	require.NoError(t, err)

	// Sender actions carry no messaging_type or message.
	assert.Equal(t, map[string]any{
		"recipient":     map[string]any{"id": "123"},
		"sender_action": "typing_on",
	}, rec.request(0).Body)
}

func TestSendTextWithQuickReplies_Payload(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	quickReplies := []QuickReply{
		{ContentType: "text", Title: "Yes!", Payload: "USER_SAY_YES"},
		{ContentType: "location"},
	}
	_, err := client.SendTextWithQuickReplies(context.Background(), "123", "Forecast?", quickReplies)
	require.NoError(t, err)

	msg := rec.request(0).Body["message"].(map[string]any)
	assert.Equal(t, "Forecast?", msg["text"])

	replies := msg["quick_replies"].([]any)
	require.Len(t, replies, 2)
	first := replies[0].(map[string]any)
	assert.Equal(t, "text", first["content_type"])
	assert.Equal(t, "Yes!", first["title"])
	second := replies[1].(map[string]any)
	assert.Equal(t, map[string]any{"content_type": "location"}, second)
}

func TestSendImageWithQuickReplies_Payload(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	_, err := client.SendImageWithQuickReplies(context.Background(), "123",
		"http://i.imgur.com/uAUm3VW.jpg",
		[]QuickReply{{ContentType: "text", Title: "Nice", Payload: "USER_LIKES"}})
	require.NoError(t, err)

	msg := rec.request(0).Body["message"].(map[string]any)
	att := msg["attachment"].(map[string]any)
	assert.Equal(t, "image", att["type"])
	assert.Equal(t, map[string]any{"url": "http://i.imgur.com/uAUm3VW.jpg"}, att["payload"])
	assert.Len(t, msg["quick_replies"], 1)
}

func TestSendTemplateWithQuickReplies_Payload(t *testing.T) {
	rec := &requestRecorder{}
	client := newTestClient(t, rec)

	payload := map[string]any{
		"template_type": "generic",
		"elements":      []map[string]any{{"title": "Welcome"}},
	}
	_, err := client.SendTemplateWithQuickReplies(context.Background(), "123", payload,
		[]QuickReply{{ContentType: "text", Title: "More", Payload: "MORE"}})
	require.NoError(t, err)

	att := rec.request(0).Body["message"].(map[string]any)["attachment"].(map[string]any)
	assert.Equal(t, "template", att["type"])
	assert.Equal(t, "generic", att["payload"].(map[string]any)["template_type"])
}
