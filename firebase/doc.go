// Package firebase is a small REST client for the two Firebase services the
// viewer needs: email/password sign in (Identity Toolkit) and the Realtime
// Database.
//
// Responses are parsed with the lenient JSON parser in
// github.com/signadot/rtdbview/parse, so values keep their int/float kind.
// Transient failures (network errors, 429 and 5xx responses) are retried
// with exponential backoff.
package firebase
