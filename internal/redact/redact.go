// Package redact scrubs credentials and other sensitive fragments from
// strings before they are logged or returned in error responses.
//
// Upstream SDK errors routinely echo request details back to the caller, so
// every error message that leaves the process passes through this package.
package redact

import (
	"regexp"
	"strings"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	re          *regexp.Regexp
	placeholder string

	// match, when set, must accept the last capture group for the
	// replacement to happen.
	match func(value string) bool
}

// looksLikeCredential accepts values with a digit or of at least 20
// characters. Prose after "key:" or "token=" fails both tests.
func looksLikeCredential(value string) bool {
	return len(value) >= 20 || strings.ContainsAny(value, "0123456789")
}

// Order matters: specific credential shapes run before the generic
// "key=value" rule so the placeholder names the right kind of secret.
var secretRules = []rule{
	{
		re:          regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb|db|database|connection)://[^@\s]+@`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		// Gemini, OpenAI, Anthropic and Svix key formats.
		re:          regexp.MustCompile(`\b(?:AIza[0-9A-Za-z_\-]{20,}|sk-(?:ant-)?[A-Za-z0-9_\-]{16,}|whsec_[A-Za-z0-9+/=]{16,})`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		re:          regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		placeholder: RedactedJWTPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*['"]?[^'"&\s]{3,}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|key)\s*[:=]\s*['"]?([A-Za-z0-9_\-.~+/]{8,})`),
		placeholder: RedactedKeyPlaceholder,
		match:       looksLikeCredential,
	},
}

var detailRules = []rule{
	{
		re:          regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP|GRANT)[\s\w,*()]+(?:FROM|INTO|SET|TABLE|DATABASE|SCHEMA|VIEW)(?:[\s\w,*()='"]+)?`),
		placeholder: RedactedSQLPlaceholder,
	},
	{
		re:          regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: RedactedEmailPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		re:          regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		re:          regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		placeholder: RedactedHostPlaceholder,
	},
}

func apply(input string, rules []rule) string {
	for _, r := range rules {
		if r.match == nil {
			input = r.re.ReplaceAllString(input, r.placeholder)
			continue
		}
		input = r.re.ReplaceAllStringFunc(input, func(m string) string {
			sub := r.re.FindStringSubmatch(m)
			if !r.match(sub[len(sub)-1]) {
				return m
			}
			return r.placeholder
		})
	}
	return input
}

// Secrets removes credentials (API keys, connection-string passwords,
// tokens and webhook secrets) and leaves the rest of the message readable.
func Secrets(input string) string {
	if input == "" {
		return input
	}
	return apply(input, secretRules)
}

// String removes credentials plus SQL, email addresses, file paths and host
// names. Use it for messages whose audience is outside the service.
func String(input string) string {
	if input == "" {
		return input
	}
	return apply(apply(input, secretRules), detailRules)
}

// Error redacts err.Error() with String.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
