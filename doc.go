// Package fbbotw provides a Go client for the Facebook Messenger Platform:
// the Send API, the Messenger Profile API and the User Profile API.
//
// The client is a thin shaping layer. Each method builds the exact JSON
// payload the platform expects, performs one HTTP round trip, and hands the
// raw response back to the caller. Field limits (character counts, list
// lengths) are documented but not enforced; the remote service is
// authoritative on validation.
//
// Basic usage:
//
//	client := fbbotw.New(fbbotw.WithAccessToken(token))
//
//	resp, err := client.SendTextMessage(ctx, psid, "Hi. How are you doing today?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !resp.OK() {
//	    log.Printf("send rejected: %s", resp.Body)
//	}
//
// With no explicit token the client resolves PAGE_ACCESS_TOKEN from the
// environment on every call, so rotating the variable between calls takes
// effect immediately.
package fbbotw
