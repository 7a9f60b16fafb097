package fbbotw

import "context"

// buttonTemplatePayload is the wire form of a button template.
type buttonTemplatePayload struct {
	TemplateType string   `json:"template_type"`
	Text         string   `json:"text"`
	Buttons      []Button `json:"buttons"`
	Sharable     *bool    `json:"sharable,omitempty"`
}

// genericTemplatePayload is the wire form of a generic template.
type genericTemplatePayload struct {
	TemplateType     string           `json:"template_type"`
	Sharable         *bool            `json:"sharable,omitempty"`
	ImageAspectRatio ImageAspectRatio `json:"image_aspect_ratio,omitempty"`
	Elements         []GenericElement `json:"elements"`
}

// listTemplatePayload is the wire form of a list template.
type listTemplatePayload struct {
	TemplateType    string           `json:"template_type"`
	TopElementStyle string           `json:"top_element_style"`
	Buttons         []Button         `json:"buttons,omitempty"`
	Elements        []GenericElement `json:"elements"`
	Sharable        *bool            `json:"sharable,omitempty"`
}

// receiptTemplatePayload is the wire form of a receipt template.
type receiptTemplatePayload struct {
	TemplateType  string           `json:"template_type"`
	RecipientName string           `json:"recipient_name"`
	OrderNumber   string           `json:"order_number"`
	Currency      string           `json:"currency"`
	PaymentMethod string           `json:"payment_method"`
	Summary       ReceiptSummary   `json:"summary"`
	OrderURL      string           `json:"order_url,omitempty"`
	Timestamp     string           `json:"timestamp,omitempty"`
	Elements      []ReceiptElement `json:"elements,omitempty"`
	Address       *Address         `json:"address,omitempty"`
	Adjustments   []Adjustment     `json:"adjustments,omitempty"`
	MerchantName  string           `json:"merchant_name,omitempty"`
	Sharable      *bool            `json:"sharable,omitempty"`
}

// mediaTemplatePayload is the wire form of a media template.
type mediaTemplatePayload struct {
	TemplateType string         `json:"template_type"`
	Elements     []MediaElement `json:"elements"`
}

// sendTemplate wraps a template payload in the send envelope and posts it.
func (c *Client) sendTemplate(ctx context.Context, cfg *sendConfig, psid string, payload any) (*Response, error) {
	req := cfg.envelope(psid)
	req.Message = &messageBody{
		Attachment: &attachment{Type: attachmentTemplate, Payload: payload},
	}
	return c.post(ctx, pathMessages, req)
}

// SendButtonTemplate sends a button template with the given text (640
// chars) and call-to-action buttons.
func (c *Client) SendButtonTemplate(ctx context.Context, psid, text string, buttons []Button, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	return c.sendTemplate(ctx, cfg, psid, &buttonTemplatePayload{
		TemplateType: "button",
		Text:         text,
		Buttons:      buttons,
		Sharable:     cfg.sharableField(),
	})
}

// SendGenericTemplate sends a single-element generic template. Optional
// element fields left empty are absent from the payload.
func (c *Client) SendGenericTemplate(ctx context.Context, psid string, element GenericElement, opts ...SendOption) (*Response, error) {
	return c.SendGenericCarousel(ctx, psid, []GenericElement{element}, opts...)
}

// SendGenericCarousel sends up to 10 generic template elements as a
// horizontally scrollable carousel.
func (c *Client) SendGenericCarousel(ctx context.Context, psid string, elements []GenericElement, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	return c.sendTemplate(ctx, cfg, psid, &genericTemplatePayload{
		TemplateType:     "generic",
		Sharable:         cfg.sharableField(),
		ImageAspectRatio: cfg.aspectRatioField(),
		Elements:         elements,
	})
}

// SendListTemplate sends a list template with 2-4 elements and at most
// one global button. Pass nil buttons to omit them.
func (c *Client) SendListTemplate(ctx context.Context, psid string, elements []GenericElement, buttons []Button, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	return c.sendTemplate(ctx, cfg, psid, &listTemplatePayload{
		TemplateType:    "list",
		TopElementStyle: cfg.topElementStyle,
		Buttons:         buttons,
		Elements:        elements,
		Sharable:        cfg.sharableField(),
	})
}

// SendReceiptTemplate sends an order confirmation receipt.
func (c *Client) SendReceiptTemplate(ctx context.Context, psid string, receipt Receipt, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	return c.sendTemplate(ctx, cfg, psid, &receiptTemplatePayload{
		TemplateType:  "receipt",
		RecipientName: receipt.RecipientName,
		OrderNumber:   receipt.OrderNumber,
		Currency:      receipt.Currency,
		PaymentMethod: receipt.PaymentMethod,
		Summary:       receipt.Summary,
		OrderURL:      receipt.OrderURL,
		Timestamp:     receipt.Timestamp,
		Elements:      receipt.Elements,
		Address:       receipt.Address,
		Adjustments:   receipt.Adjustments,
		MerchantName:  receipt.MerchantName,
		Sharable:      cfg.sharableField(),
	})
}

// SendMediaTemplate sends a media template built from the given elements.
func (c *Client) SendMediaTemplate(ctx context.Context, psid string, elements []MediaElement, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	return c.sendTemplate(ctx, cfg, psid, &mediaTemplatePayload{
		TemplateType: "media",
		Elements:     elements,
	})
}

// SendCallButton sends a one-button template that starts a phone call on
// mobile. The phone number must carry a "+" prefix with country code,
// e.g. "+16505551234".
func (c *Client) SendCallButton(ctx context.Context, psid, text, title, phoneNumber string, opts ...SendOption) (*Response, error) {
	cfg := newSendConfig(opts)
	return c.sendTemplate(ctx, cfg, psid, &buttonTemplatePayload{
		TemplateType: "button",
		Text:         text,
		Buttons: []Button{{
			Type:    "phone_number",
			Title:   title,
			Payload: phoneNumber,
		}},
	})
}
