package headerdecoder

import (
	"net/http"
	"strings"
)

// Header names whose values are masked in debug output.
var sensitiveNames = map[string]bool{
	"Authorization":       true,
	"Proxy-Authorization": true,
	"Cookie":              true,
	"Set-Cookie":          true,
	"X-Api-Key":           true,
}

// MaskSensitive masks sensitive information, showing only first and last few characters
func MaskSensitive(showChars int) func(string) string {
	return func(value string) string {
		if len(value) <= showChars*2 {
			return strings.Repeat("*", len(value))
		}
		return value[:showChars] + strings.Repeat("*", len(value)-showChars*2) + value[len(value)-showChars:]
	}
}

// Redact returns a copy of headers with credential-bearing values masked,
// suitable for logging. The input is not modified.
func Redact(headers http.Header) http.Header {
	mask := MaskSensitive(2)

	redacted := make(http.Header, len(headers))
	for name, values := range headers {
		if !sensitiveNames[name] {
			redacted[name] = append([]string(nil), values...)
			continue
		}
		masked := make([]string, len(values))
		for i, value := range values {
			masked[i] = mask(value)
		}
		redacted[name] = masked
	}
	return redacted
}
