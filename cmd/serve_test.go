package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peter6188/tb-visualization-dashboard-V2/store"
)

func TestServeCacheTTLDefault(t *testing.T) {
	flag := serveCmd.Flags().Lookup("cache-ttl")
	require.NotNil(t, flag)

	d, err := time.ParseDuration(flag.DefValue)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultCacheTTL, d)
}
