package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, "dev (unknown, unknown)", VersionInfo{Version: "dev", GitCommit: "unknown", BuildTime: "unknown"}.String())
}
