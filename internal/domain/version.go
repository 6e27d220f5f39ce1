package domain

// VersionInfo is the static service identity returned by the version
// endpoint. Immutable after construction.
type VersionInfo struct {
	ServiceName          string   `json:"service_name"`
	ServiceVersion       string   `json:"service_version"`
	SupportedAPIVersions []string `json:"supported_api_versions"`
}
