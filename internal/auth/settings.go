// Package auth resolves authentication settings for the gateway's inbound
// surface. The gateway carries no authorization policy of its own; it only
// parses pre-resolved settings from the environment and enforces the static
// bearer check they describe.
package auth

import "os"

// Mode selects how inbound requests are authenticated.
type Mode string

const (
	ModeDisabled Mode = "disabled"
	ModeBearer   Mode = "bearer"
)

// Settings describes the resolved authentication configuration.
type Settings struct {
	Mode        Mode
	Profile     string
	BearerToken string
}

// SettingsFromEnv derives settings from ARP_AUTH_MODE / ARP_AUTH_PROFILE.
// When neither is set, authentication is disabled (dev-insecure default).
func SettingsFromEnv() Settings {
	mode := os.Getenv("ARP_AUTH_MODE")
	profile := os.Getenv("ARP_AUTH_PROFILE")
	if mode == "" && profile == "" {
		return Settings{Mode: ModeDisabled}
	}
	if mode == "" {
		mode = string(ModeBearer)
	}
	return Settings{
		Mode:        Mode(mode),
		Profile:     profile,
		BearerToken: os.Getenv("ARP_AUTH_BEARER_TOKEN"),
	}
}
