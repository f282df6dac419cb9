package commands

import (
	"testing"

	"postboard/app/config"
	"postboard/app/screen"

	"github.com/stretchr/testify/assert"
)

func TestPlatformOf(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, screen.DetectPlatform(), platformOf(cfg))

	cfg.Platform = "Android"
	assert.Equal(t, screen.PlatformAndroid, platformOf(cfg))

	cfg.Platform = "ios"
	assert.Equal(t, screen.PlatformIOS, platformOf(cfg))

	cfg.Platform = "plan9"
	assert.Equal(t, screen.PlatformOther, platformOf(cfg))
}
