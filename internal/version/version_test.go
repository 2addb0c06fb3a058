package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.2.0", GitCommit: "abc123", BuildTime: "2026-01-01"}
	assert.Equal(t, "v1.2.0 (commit: abc123, built: 2026-01-01)", info.String())
}

func TestGet_Defaults(t *testing.T) {
	assert.Equal(t, Info{Version: "dev", GitCommit: "unknown", BuildTime: "unknown"}, Get())
}
