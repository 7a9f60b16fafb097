package fbbotw

import (
	"context"
	"strings"
)

// Greeting is a localized greeting text (160 chars). One entry with
// locale "default" is required by the platform.
type Greeting struct {
	Locale string `json:"locale"`
	Text   string `json:"text"`
}

// PersistentMenu is the per-locale menu shown in the composer.
type PersistentMenu struct {
	Locale                string     `json:"locale"`
	ComposerInputDisabled bool       `json:"composer_input_disabled"`
	CallToActions         []MenuItem `json:"call_to_actions"`
}

// MenuItem is one entry of a persistent menu. Type "nested" uses
// CallToActions for the submenu; "postback" uses Payload; "web_url" uses
// URL.
type MenuItem struct {
	Type                string     `json:"type"`
	Title               string     `json:"title"`
	Payload             string     `json:"payload,omitempty"`
	URL                 string     `json:"url,omitempty"`
	WebviewHeightRatio  string     `json:"webview_height_ratio,omitempty"`
	MessengerExtensions bool       `json:"messenger_extensions,omitempty"`
	FallbackURL         string     `json:"fallback_url,omitempty"`
	CallToActions       []MenuItem `json:"call_to_actions,omitempty"`
}

// PaymentSettings configures the page's payment dialogs. At least one
// field must be set; SetPaymentSettings refuses to issue an empty update.
type PaymentSettings struct {
	// PrivacyURL appears in payment dialogs.
	PrivacyURL string
	// PublicKey encrypts sensitive payment data sent to the page.
	PublicKey string
	// Testers are page-scoped ids whose cards are not charged during
	// development.
	Testers []string
}

// AudienceType selects who can discover the bot.
type AudienceType string

// Audience type values.
const (
	AudienceAll    AudienceType = "all"
	AudienceCustom AudienceType = "custom"
	AudienceNone   AudienceType = "none"
)

// TargetCountries whitelists or blacklists countries by ISO 3166 Alpha-2
// code for custom audiences.
type TargetCountries struct {
	Whitelist []string `json:"whitelist,omitempty"`
	Blacklist []string `json:"blacklist,omitempty"`
}

// ShareButtonState toggles the share button inside a chat extension
// webview.
type ShareButtonState string

// Share button states.
const (
	ShareButtonShow ShareButtonState = "show"
	ShareButtonHide ShareButtonState = "hide"
)

// postbackPayload wraps the get_started postback payload.
type postbackPayload struct {
	Payload string `json:"payload"`
}

// paymentSettingsPayload is the wire form of payment settings; empty
// fields stay off the wire.
type paymentSettingsPayload struct {
	PrivacyURL string   `json:"privacy_url,omitempty"`
	PublicKey  string   `json:"public_key,omitempty"`
	Testers    []string `json:"testers,omitempty"`
}

// targetAudiencePayload is the wire form of a target audience update.
type targetAudiencePayload struct {
	AudienceType AudienceType     `json:"audience_type"`
	Countries    *TargetCountries `json:"countries,omitempty"`
}

// homeURLPayload is the wire form of a chat extension home URL update.
type homeURLPayload struct {
	URL                string           `json:"url"`
	WebviewHeightRatio string           `json:"webview_height_ratio"`
	WebviewShareButton ShareButtonState `json:"webview_share_button"`
	InTest             bool             `json:"in_test"`
}

// Setup sets the greeting text (via the legacy thread settings endpoint)
// and the get started button with payload "USER_START", in that order.
// Both responses are returned in call order; an error on the first call
// aborts the second.
func (c *Client) Setup(ctx context.Context, greetingText string) (*Response, *Response, error) {
	body := struct {
		SettingType string `json:"setting_type"`
		Greeting    struct {
			Text string `json:"text"`
		} `json:"greeting"`
	}{SettingType: "greeting"}
	body.Greeting.Text = greetingText

	greetingResp, err := c.post(ctx, pathThreadSettings, body)
	if err != nil {
		return nil, nil, err
	}

	startResp, err := c.SetStartButton(ctx, "USER_START")
	if err != nil {
		return greetingResp, nil, err
	}
	return greetingResp, startResp, nil
}

// SetGreetingTexts sets the localized greeting texts shown before the
// first message. An entry with locale "default" is required.
func (c *Client) SetGreetingTexts(ctx context.Context, greetings []Greeting) (*Response, error) {
	body := struct {
		Greeting []Greeting `json:"greeting"`
	}{Greeting: greetings}
	return c.post(ctx, pathMessengerProfile, body)
}

// SetStartButton sets the get started button's postback payload. An empty
// payload falls back to "START".
func (c *Client) SetStartButton(ctx context.Context, payload string) (*Response, error) {
	if payload == "" {
		payload = "START"
	}
	body := struct {
		GetStarted postbackPayload `json:"get_started"`
	}{GetStarted: postbackPayload{Payload: payload}}
	return c.post(ctx, pathMessengerProfile, body)
}

// SetPersistentMenu sets the persistent menus shown in the chat view.
func (c *Client) SetPersistentMenu(ctx context.Context, menus []PersistentMenu) (*Response, error) {
	body := struct {
		PersistentMenu []PersistentMenu `json:"persistent_menu"`
	}{PersistentMenu: menus}
	return c.post(ctx, pathMessengerProfile, body)
}

// SetDomainWhitelist whitelists domains (max 10) for Messenger
// Extensions.
func (c *Client) SetDomainWhitelist(ctx context.Context, domains []string) (*Response, error) {
	body := struct {
		WhitelistedDomains []string `json:"whitelisted_domains"`
	}{WhitelistedDomains: domains}
	return c.post(ctx, pathMessengerProfile, body)
}

// DeleteDomainWhitelist clears the domain whitelist.
func (c *Client) DeleteDomainWhitelist(ctx context.Context) (*Response, error) {
	body := struct {
		Fields []string `json:"fields"`
	}{Fields: []string{"whitelisted_domains"}}
	return c.delete(ctx, pathMessengerProfile, body)
}

// SetAccountLinkingURL sets the OAuth callback URL that connects users
// with the page's business login.
func (c *Client) SetAccountLinkingURL(ctx context.Context, linkingURL string) (*Response, error) {
	body := struct {
		AccountLinkingURL string `json:"account_linking_url"`
	}{AccountLinkingURL: linkingURL}
	return c.post(ctx, pathMessengerProfile, body)
}

// SetPaymentSettings configures payment: privacy policy URL, public key
// or test users. When all three are empty no request is issued and
// ErrMissingPaymentSettings is returned.
func (c *Client) SetPaymentSettings(ctx context.Context, settings PaymentSettings) (*Response, error) {
	if strings.TrimSpace(settings.PrivacyURL) == "" &&
		strings.TrimSpace(settings.PublicKey) == "" &&
		len(settings.Testers) == 0 {
		return nil, &PaymentSettingsError{}
	}

	payload := &paymentSettingsPayload{Testers: settings.Testers}
	if strings.TrimSpace(settings.PrivacyURL) != "" {
		payload.PrivacyURL = settings.PrivacyURL
	}
	if strings.TrimSpace(settings.PublicKey) != "" {
		payload.PublicKey = settings.PublicKey
	}

	body := struct {
		PaymentSettings *paymentSettingsPayload `json:"payment_settings"`
	}{PaymentSettings: payload}
	return c.post(ctx, pathMessengerProfile, body)
}

// SetTargetAudience sets who sees the bot in the Discover tab. Countries
// are sent only for the custom and none audience types, matching the
// platform contract.
func (c *Client) SetTargetAudience(ctx context.Context, audienceType AudienceType, countries *TargetCountries) (*Response, error) {
	if audienceType == "" {
		audienceType = AudienceAll
	}

	payload := &targetAudiencePayload{AudienceType: audienceType}
	if audienceType == AudienceCustom || audienceType == AudienceNone {
		payload.Countries = countries
	}

	body := struct {
		TargetAudience *targetAudiencePayload `json:"target_audience"`
	}{TargetAudience: payload}
	return c.post(ctx, pathMessengerProfile, body)
}

// SetChatExtensionHomeURL enables a chat extension in the composer
// drawer. The webview height ratio is fixed to "tall" by the platform. An
// empty shareButton hides the share button; inTest controls whether
// unassigned public users can see the extension.
func (c *Client) SetChatExtensionHomeURL(ctx context.Context, homeURL string, shareButton ShareButtonState, inTest bool) (*Response, error) {
	if shareButton == "" {
		shareButton = ShareButtonHide
	}

	body := struct {
		HomeURL homeURLPayload `json:"home_url"`
	}{HomeURL: homeURLPayload{
		URL:                homeURL,
		WebviewHeightRatio: "tall",
		WebviewShareButton: shareButton,
		InTest:             inTest,
	}}
	return c.post(ctx, pathMessengerProfile, body)
}
