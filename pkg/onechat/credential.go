package onechat

import (
	"strings"

	"github.com/keepmind9/onechat/pkg/constants"
)

// NormalizeToken returns the bare token, stripping one leading "Bearer "
// so callers may pass either the raw token or the header form.
func NormalizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimLeft(token, " \t\r\n"), constants.BearerPrefix))
}

// maskSecret masks sensitive information for logging
func maskSecret(s string) string {
	if len(s) <= constants.MinSecretLengthForMasking {
		return "***"
	}
	return s[:constants.SecretMaskPrefixLength] + "***" + s[len(s)-constants.SecretMaskSuffixLength:]
}

// MaskToken returns a log-safe rendering of a token
func MaskToken(token string) string {
	return maskSecret(NormalizeToken(token))
}
