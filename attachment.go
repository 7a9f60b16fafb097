package fbbotw

import "context"

// SendAttachment sends a hosted media attachment of the given kind. Pass
// WithReusable to get an attachment_id back for later SendSavedAttachment
// calls.
func (c *Client) SendAttachment(ctx context.Context, psid string, kind AttachmentType, mediaURL string, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	req := cfg.envelope(psid)
	req.Message = &messageBody{
		Attachment: &attachment{
			Type:    kind,
			Payload: urlPayload{URL: mediaURL, IsReusable: cfg.reusable},
		},
	}
	return c.post(ctx, pathMessages, req)
}

// SendImage sends a hosted image (jpg, png, gif).
func (c *Client) SendImage(ctx context.Context, psid, imageURL string, opts ...SendOption) (*Response, error) {
	return c.SendAttachment(ctx, psid, AttachmentImage, imageURL, opts...)
}

// SendAudio sends a hosted audio clip (10 MB).
func (c *Client) SendAudio(ctx context.Context, psid, audioURL string, opts ...SendOption) (*Response, error) {
	return c.SendAttachment(ctx, psid, AttachmentAudio, audioURL, opts...)
}

// SendVideo sends a hosted video.
func (c *Client) SendVideo(ctx context.Context, psid, videoURL string, opts ...SendOption) (*Response, error) {
	return c.SendAttachment(ctx, psid, AttachmentVideo, videoURL, opts...)
}

// SendFile sends a hosted file (10 MB).
func (c *Client) SendFile(ctx context.Context, psid, fileURL string, opts ...SendOption) (*Response, error) {
	return c.SendAttachment(ctx, psid, AttachmentFile, fileURL, opts...)
}

// UploadAttachment uploads hosted media for reuse without a recipient.
// The response body carries the attachment_id to pass to
// SendSavedAttachment.
func (c *Client) UploadAttachment(ctx context.Context, kind AttachmentType, mediaURL string) (*Response, error) {
	body := struct {
		Message *messageBody `json:"message"`
	}{
		Message: &messageBody{
			Attachment: &attachment{
				Type:    kind,
				Payload: urlPayload{URL: mediaURL, IsReusable: true},
			},
		},
	}
	return c.post(ctx, pathAttachments, body)
}

// SendSavedAttachment sends a previously uploaded attachment by id.
func (c *Client) SendSavedAttachment(ctx context.Context, psid, attachmentID string, kind AttachmentType, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	req := cfg.envelope(psid)
	req.Message = &messageBody{
		Attachment: &attachment{
			Type:    kind,
			Payload: savedPayload{AttachmentID: attachmentID},
		},
	}
	return c.post(ctx, pathMessages, req)
}
