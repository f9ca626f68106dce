package models

import "strings"

// Platform identifies the storefront an account or game belongs to.
type Platform string

const (
	PlatformSteam Platform = "Steam"
	PlatformEpic  Platform = "Epic"
)

// ParsePlatform maps a query/request value onto a known platform.
// Matching is case-insensitive; unknown values return false.
func ParsePlatform(value string) (Platform, bool) {
	value = strings.TrimSpace(value)
	switch {
	case strings.EqualFold(value, string(PlatformSteam)):
		return PlatformSteam, true
	case strings.EqualFold(value, string(PlatformEpic)):
		return PlatformEpic, true
	default:
		return "", false
	}
}
