package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")
	assert.Equal(t, AppBuildInfo{Version: "v1.2.0", Date: "N/A", Commit: "abc123"}, info)
	assert.True(t, info.Known())

	assert.False(t, NewAppBuildInfo("", "", "").Known())
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAppBuildInfo("v1", "2026-10-01", "").Print(&buf))
	assert.Equal(t, "Build version: v1\nBuild date: 2026-10-01\nBuild commit: N/A\n", buf.String())
}
