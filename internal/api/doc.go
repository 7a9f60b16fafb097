// Package api provides the HTTP transport for the Graph API. It builds
// versioned endpoint URLs with the access token in the query string,
// serializes JSON request bodies, and performs exactly one round trip per
// call.
//
// The transport deliberately does not interpret responses: non-2xx
// statuses are returned to the caller as-is rather than converted to
// errors, and there is no retry or backoff. The Messenger Platform is
// authoritative on validation and error semantics; this layer only moves
// bytes.
package api
