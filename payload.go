package fbbotw

// MessagingType categorizes an outbound message for the Send API.
type MessagingType string

// Messaging type values. MessagingTypeTag requires a message tag.
const (
	MessagingTypeResponse MessagingType = "RESPONSE"
	MessagingTypeUpdate   MessagingType = "UPDATE"
	MessagingTypeTag      MessagingType = "MESSAGE_TAG"
)

// SenderAction controls the typing indicator and read receipt in the chat.
type SenderAction string

// Sender action values.
const (
	SenderActionTypingOn  SenderAction = "typing_on"
	SenderActionTypingOff SenderAction = "typing_off"
	SenderActionMarkSeen  SenderAction = "mark_seen"
)

// AttachmentType identifies the kind of media attachment.
type AttachmentType string

// Attachment type values.
const (
	AttachmentImage AttachmentType = "image"
	AttachmentAudio AttachmentType = "audio"
	AttachmentVideo AttachmentType = "video"
	AttachmentFile  AttachmentType = "file"

	attachmentTemplate AttachmentType = "template"
)

// ImageAspectRatio controls how generic template images are rendered.
type ImageAspectRatio string

// Aspect ratio values. Horizontal is the platform default and is omitted
// from the payload.
const (
	AspectRatioHorizontal ImageAspectRatio = "horizontal"
	AspectRatioSquare     ImageAspectRatio = "square"
)

// recipient wraps the page-scoped user id the way the Send API expects.
type recipient struct {
	ID string `json:"id"`
}

// sendRequest is the envelope for every me/messages post.
type sendRequest struct {
	Recipient     recipient     `json:"recipient"`
	MessagingType MessagingType `json:"messaging_type,omitempty"`
	Tag           *string       `json:"tag,omitempty"`
	Message       *messageBody  `json:"message,omitempty"`
	SenderAction  SenderAction  `json:"sender_action,omitempty"`
}

// messageBody is the message object inside a send envelope.
type messageBody struct {
	Text         string       `json:"text,omitempty"`
	Attachment   *attachment  `json:"attachment,omitempty"`
	QuickReplies []QuickReply `json:"quick_replies,omitempty"`
}

// attachment is the {"type": ..., "payload": ...} wrapper shared by media
// and template sends.
type attachment struct {
	Type    AttachmentType `json:"type"`
	Payload any            `json:"payload"`
}

// urlPayload points an attachment at a hosted media URL.
type urlPayload struct {
	URL        string `json:"url"`
	IsReusable bool   `json:"is_reusable,omitempty"`
}

// savedPayload references a previously uploaded reusable attachment.
type savedPayload struct {
	AttachmentID string `json:"attachment_id"`
}

// envelope builds the send envelope for a recipient. The tag key is
// present iff a tag was supplied or the messaging type requires one;
// otherwise it is absent from the wire, not null.
func (cfg *sendConfig) envelope(psid string) *sendRequest {
	req := &sendRequest{
		Recipient:     recipient{ID: psid},
		MessagingType: cfg.messagingType,
	}
	if cfg.tag != "" || cfg.messagingType == MessagingTypeTag {
		tag := cfg.tag
		req.Tag = &tag
	}
	return req
}

// sharableField renders the sharable flag: nil (omitted) when sharing is
// enabled, an explicit false when disabled.
func (cfg *sendConfig) sharableField() *bool {
	if cfg.sharable {
		return nil
	}
	disabled := false
	return &disabled
}

// aspectRatioField renders image_aspect_ratio: empty (omitted) for the
// horizontal default, "square" for anything else.
func (cfg *sendConfig) aspectRatioField() ImageAspectRatio {
	if cfg.aspectRatio == AspectRatioHorizontal || cfg.aspectRatio == "" {
		return ""
	}
	return AspectRatioSquare
}

// QuickReply is a quick reply button shown with a message. Max 11 per
// message. For content type "location" leave the other fields empty.
type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title,omitempty"`
	Payload     string `json:"payload,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Button is a call-to-action button used by button, generic and list
// templates. Set the fields matching the button type: "web_url" uses URL,
// "postback" and "phone_number" use Payload, "element_share" uses neither.
type Button struct {
	Type                string `json:"type"`
	Title               string `json:"title,omitempty"`
	URL                 string `json:"url,omitempty"`
	Payload             string `json:"payload,omitempty"`
	WebviewHeightRatio  string `json:"webview_height_ratio,omitempty"`
	MessengerExtensions bool   `json:"messenger_extensions,omitempty"`
	FallbackURL         string `json:"fallback_url,omitempty"`
}

// DefaultAction is the URL opened when the user taps a template element.
type DefaultAction struct {
	Type                string `json:"type"`
	URL                 string `json:"url"`
	WebviewHeightRatio  string `json:"webview_height_ratio,omitempty"`
	MessengerExtensions bool   `json:"messenger_extensions,omitempty"`
	FallbackURL         string `json:"fallback_url,omitempty"`
}

// GenericElement is one bubble of a generic or list template. Title is
// required (80 chars); everything else is optional and omitted when empty.
type GenericElement struct {
	Title         string         `json:"title"`
	ItemURL       string         `json:"item_url,omitempty"`
	ImageURL      string         `json:"image_url,omitempty"`
	Subtitle      string         `json:"subtitle,omitempty"`
	DefaultAction *DefaultAction `json:"default_action,omitempty"`
	Buttons       []Button       `json:"buttons,omitempty"`
}

// MediaElement is one element of a media template. Exactly one of URL or
// AttachmentID should be set.
type MediaElement struct {
	MediaType    string   `json:"media_type"`
	URL          string   `json:"url,omitempty"`
	AttachmentID string   `json:"attachment_id,omitempty"`
	Buttons      []Button `json:"buttons,omitempty"`
}

// ReceiptSummary is the payment totals block of a receipt template. Only
// TotalCost is required by the platform.
type ReceiptSummary struct {
	Subtotal     float64 `json:"subtotal,omitempty"`
	ShippingCost float64 `json:"shipping_cost,omitempty"`
	TotalTax     float64 `json:"total_tax,omitempty"`
	TotalCost    float64 `json:"total_cost"`
}

// ReceiptElement is one purchased item on a receipt template. Max 100.
type ReceiptElement struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
}

// Address is the shipping address on a receipt template.
type Address struct {
	Street1    string `json:"street_1"`
	Street2    string `json:"street_2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// Adjustment is a discount applied to a receipt template.
type Adjustment struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Receipt holds the fields of a receipt template send. RecipientName,
// OrderNumber, Currency, PaymentMethod and Summary are required; the rest
// are included only when set.
type Receipt struct {
	RecipientName string
	OrderNumber   string
	Currency      string
	PaymentMethod string
	Summary       ReceiptSummary
	MerchantName  string
	Timestamp     string
	OrderURL      string
	Elements      []ReceiptElement
	Address       *Address
	Adjustments   []Adjustment
}
