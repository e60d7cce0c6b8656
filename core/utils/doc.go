// Package utils provides small text helpers shared by the request handlers.
// Device payloads are only ever logged, never parsed, so the helpers favour
// producing something printable over reporting errors.
package utils
