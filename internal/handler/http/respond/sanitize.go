package respond

import (
	"regexp"
)

// dbPasswordPattern masks the password segment of a DSN.
var dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return dbPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
