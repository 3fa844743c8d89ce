package devcycle

import (
	"runtime"
	"strings"
)

const unknownEnvironmentValue = "unknown"

// Host environment details captured once when a User is created
type DeviceInfo struct {
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	DeviceModel     string `json:"deviceModel"`
}

type EnvironmentProvider interface {
	DeviceInfo() DeviceInfo
}

// Fixed device info, handy for tests and for hosts that already know their platform.
type StaticEnvironment DeviceInfo

func (e StaticEnvironment) DeviceInfo() DeviceInfo {
	return DeviceInfo{
		Platform:        defaultString(e.Platform, unknownEnvironmentValue),
		PlatformVersion: defaultString(e.PlatformVersion, unknownEnvironmentValue),
		DeviceModel:     defaultString(e.DeviceModel, unknownEnvironmentValue),
	}
}

// Reports the OS and architecture the Go runtime was built for.
// PlatformVersion is the Go runtime version since the OS version is not portably available.
type RuntimeEnvironment struct{}

func (RuntimeEnvironment) DeviceInfo() DeviceInfo {
	return DeviceInfo{
		Platform:        runtime.GOOS,
		PlatformVersion: defaultString(strings.TrimPrefix(runtime.Version(), "go"), unknownEnvironmentValue),
		DeviceModel:     runtime.GOARCH,
	}
}

// Derives device info from a user agent string, e.g. for a server rendering on behalf of a browser.
type UserAgentEnvironment struct {
	UserAgent string
	parser    *UAParser
}

func NewUserAgentEnvironment(parser *UAParser, userAgent string) UserAgentEnvironment {
	return UserAgentEnvironment{UserAgent: userAgent, parser: parser}
}

func (e UserAgentEnvironment) DeviceInfo() DeviceInfo {
	client := e.parser.parse(e.UserAgent)
	if client == nil {
		return StaticEnvironment{}.DeviceInfo()
	}
	info := DeviceInfo{}
	if client.Os != nil {
		info.Platform = client.Os.Family
		info.PlatformVersion = joinVersion(client.Os.Major, client.Os.Minor, client.Os.Patch, client.Os.PatchMinor)
	}
	if client.Device != nil {
		info.DeviceModel = defaultString(client.Device.Model, client.Device.Family)
	}
	return StaticEnvironment(info).DeviceInfo()
}

func joinVersion(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}
