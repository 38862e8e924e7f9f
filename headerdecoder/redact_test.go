package headerdecoder

import (
	"net/http"
	"strings"
	"testing"
)

func TestMaskSensitive(t *testing.T) {
	tests := []struct {
		name      string
		showChars int
		input     string
		expected  string
	}{
		{"long value", 2, "secret-token-12345", "se**************45"},
		{"short value fully masked", 2, "abcd", "****"},
		{"empty value", 2, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskSensitive(tt.showChars)(tt.input)
			if got != tt.expected {
				t.Errorf("MaskSensitive(%d)(%q) = %q, want %q", tt.showChars, tt.input, got, tt.expected)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	headers := http.Header{
		"Authorization": {"Bearer super-secret-token"},
		"X-Request-Id":  {"req-123"},
	}

	redacted := Redact(headers)

	if got := redacted.Get("X-Request-Id"); got != "req-123" {
		t.Errorf("non-sensitive header changed: %q", got)
	}
	auth := redacted.Get("Authorization")
	if auth == "Bearer super-secret-token" {
		t.Error("sensitive header not masked")
	}
	if !strings.Contains(auth, "*") {
		t.Errorf("masked value %q contains no mask characters", auth)
	}

	// Original must be untouched.
	if got := headers.Get("Authorization"); got != "Bearer super-secret-token" {
		t.Errorf("Redact() mutated input: %q", got)
	}
}
