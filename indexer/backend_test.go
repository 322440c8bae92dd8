package indexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliosprotocol/go-helios/indexer/indexerconfig"
)

func TestIndexerLifecycle(t *testing.T) {
	cfg := indexerconfig.DefaultConfig
	cfg.DataDir = t.TempDir()

	idx, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, idx.Start())

	h, err := idx.OpenHead()
	require.NoError(t, err)
	require.NoError(t, h.SetHead(make([]byte, 20), make([]byte, 32)))
	require.NoError(t, h.Commit(true))

	require.NoError(t, idx.Stop())
}
