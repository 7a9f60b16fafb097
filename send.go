package fbbotw

import "context"

// SendSenderAction displays or hides the typing indicator, or marks the
// conversation as seen. typing_on stops automatically after 20 seconds.
func (c *Client) SendSenderAction(ctx context.Context, psid string, action SenderAction) (*Response, error) {
	req := &sendRequest{
		Recipient:    recipient{ID: psid},
		SenderAction: action,
	}
	return c.post(ctx, pathMessages, req)
}

// SendTextMessage sends a plain text message (640 chars) to the user.
func (c *Client) SendTextMessage(ctx context.Context, psid, text string, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	req := cfg.envelope(psid)
	req.Message = &messageBody{Text: text}
	return c.post(ctx, pathMessages, req)
}

// TextListResult pairs one item of a SendTextList call with its outcome.
type TextListResult struct {
	Text     string
	Response *Response
	Err      error
}

// SendTextList sends each text as an independent message, in input order.
// Every item gets its own round trip; a failed item does not stop later
// items and nothing is rolled back. The returned slice has one entry per
// input text, in the same order.
func (c *Client) SendTextList(ctx context.Context, psid string, texts []string, opts ...SendOption) []TextListResult {
	results := make([]TextListResult, 0, len(texts))
	for _, text := range texts {
		resp, err := c.SendTextMessage(ctx, psid, text, opts...)
		results = append(results, TextListResult{Text: text, Response: resp, Err: err})
	}
	return results
}

// SendTextWithQuickReplies sends a text message with quick reply buttons
// (max 11).
func (c *Client) SendTextWithQuickReplies(ctx context.Context, psid, text string, quickReplies []QuickReply, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	req := cfg.envelope(psid)
	req.Message = &messageBody{Text: text, QuickReplies: quickReplies}
	return c.post(ctx, pathMessages, req)
}

// SendImageWithQuickReplies sends a hosted image with quick reply buttons.
func (c *Client) SendImageWithQuickReplies(ctx context.Context, psid, imageURL string, quickReplies []QuickReply, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	req := cfg.envelope(psid)
	req.Message = &messageBody{
		Attachment:   &attachment{Type: AttachmentImage, Payload: urlPayload{URL: imageURL}},
		QuickReplies: quickReplies,
	}
	return c.post(ctx, pathMessages, req)
}

// SendTemplateWithQuickReplies sends an arbitrary template payload with
// quick reply buttons. The payload is serialized as the template
// attachment's payload field; see the platform docs for per-template
// shapes.
func (c *Client) SendTemplateWithQuickReplies(ctx context.Context, psid string, payload any, quickReplies []QuickReply, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	req := cfg.envelope(psid)
	req.Message = &messageBody{
		Attachment:   &attachment{Type: attachmentTemplate, Payload: payload},
		QuickReplies: quickReplies,
	}
	return c.post(ctx, pathMessages, req)
}
