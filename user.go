package fbbotw

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// baseProfileFields are always requested; extras are appended per call.
var baseProfileFields = []string{"name", "first_name", "last_name", "profile_pic"}

// UserProfile is the decoded result of a User Profile API lookup. Locale,
// Timezone and Gender are populated only when requested as extra fields
// and permitted for the app.
type UserProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	ProfilePic string  `json:"profile_pic"`
	Locale     string  `json:"locale"`
	Timezone   float64 `json:"timezone"`
	Gender     string  `json:"gender"`
}

// GetUserProfile looks up a user's basic information. The base fields
// (name, first name, last name, profile picture) are always requested;
// extraFields adds to them, e.g. "locale", "timezone", "gender". Unlike
// the other operations this returns the decoded body, since callers
// invariably decode it immediately.
func (c *Client) GetUserProfile(ctx context.Context, psid string, extraFields ...string) (*UserProfile, error) {
	// Fresh slice per call; the package-level base list is never appended to.
	fields := make([]string, 0, len(baseProfileFields)+len(extraFields))
	fields = append(fields, baseProfileFields...)
	fields = append(fields, extraFields...)

	resp, err := c.get(ctx, url.PathEscape(psid), url.Values{
		"fields": {strings.Join(fields, ",")},
	})
	if err != nil {
		return nil, err
	}

	var profile UserProfile
	if err := resp.Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user profile: %w", err)
	}
	return &profile, nil
}
