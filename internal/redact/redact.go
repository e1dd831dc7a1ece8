// Package redact scrubs sensitive fragments from error text before it is
// logged. Connection strings, credentials, bearer tokens and raw SQL can all
// surface inside wrapped database and auth errors; responses never carry raw
// error text, but log lines pass through here as well.
package redact

import "regexp"

// RedactionPlaceholder replaces any matched sensitive fragment.
const RedactionPlaceholder = "[REDACTED]"

var patterns = []*regexp.Regexp{
	// Database connection strings with embedded credentials
	regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`),

	// Password and secret assignments
	regexp.MustCompile(`(?i)(password|passwd|pwd|secret)([=:\s]['"]?)[^'"&\s]{3,}`),

	// JWT tokens (three base64url segments)
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),

	// Bcrypt digests
	regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{20,}`),

	// SQL fragments leaked from driver errors
	regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()='"$]+(?:FROM|INTO|SET)[\s\w,*()='"$]*`,
	),
}

// String returns s with all sensitive fragments replaced.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, RedactionPlaceholder)
	}
	return s
}

// Error returns the redacted message of err, or an empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
