package screen

import (
	"runtime"
	"strings"
)

// Platform is the device family the screen runs on.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformAndroid
	PlatformIOS
)

func (p Platform) String() string {
	switch p {
	case PlatformAndroid:
		return "Android"
	case PlatformIOS:
		return "iOS"
	case PlatformOther:
		return "other"
	}
	return "other"
}

// ParsePlatform maps a platform name to a Platform. Unknown names are
// PlatformOther.
func ParsePlatform(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "android":
		return PlatformAndroid
	case "ios":
		return PlatformIOS
	default:
		return PlatformOther
	}
}

// DetectPlatform reports the platform of the running binary.
func DetectPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

// HeaderVariant selects how the screen header is laid out.
type HeaderVariant int

const (
	HeaderDefault HeaderVariant = iota
	HeaderAndroidPadded
)

func (h HeaderVariant) String() string {
	switch h {
	case HeaderAndroidPadded:
		return "android-padded"
	case HeaderDefault:
		return "default"
	}
	return "default"
}

// HeaderFor returns the header variant for p.
func HeaderFor(p Platform) HeaderVariant {
	switch p {
	case PlatformAndroid:
		return HeaderAndroidPadded
	case PlatformIOS:
		return HeaderDefault
	case PlatformOther:
		return HeaderDefault
	}
	return HeaderDefault
}
