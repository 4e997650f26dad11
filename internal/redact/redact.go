package redact

import (
	"regexp"
)

var (
	// Access key IDs for long-term (AKIA) and session (ASIA) credentials.
	accessKeyPattern = regexp.MustCompile(`\b(?:AKIA|ASIA)[A-Z0-9]{16}\b`)
	// Values following a credential-looking key, e.g. "X-Amz-Security-Token=...".
	credentialPattern = regexp.MustCompile(`(?i)((?:secret_?access_?key|session_?token|security-token|signature)["']?\s*[:=]\s*["']?)[A-Za-z0-9/+=%_\-]{16,}`)
)

type Redactor struct{}

func New() *Redactor {
	return &Redactor{}
}

// RedactString masks AWS credential material. ARNs, account IDs and
// service IDs are left untouched.
func (r *Redactor) RedactString(input string) string {
	out := accessKeyPattern.ReplaceAllString(input, "[REDACTED]")
	return credentialPattern.ReplaceAllString(out, "${1}[REDACTED]")
}
