package rpcclient_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/config"
	"github/chapool/mobile-wallet/internal/wallet/chain"
	"github/chapool/mobile-wallet/internal/wallet/rpcclient"
)

func TestPoolClient(t *testing.T) {
	// HTTP endpoints are not contacted until the first call.
	pool := rpcclient.NewPool(chain.NewService(config.RPCServer{
		Sonic: "http://127.0.0.1:1,http://127.0.0.1:2",
	}))
	defer pool.Close()

	client, err := pool.Client(146)
	require.NoError(t, err)

	again, err := pool.Client(146)
	require.NoError(t, err)
	assert.Same(t, client, again)

	_, err = pool.Client(1)
	assert.True(t, errors.Is(err, chain.ErrUnsupportedNetwork))

	_, err = pool.Client(999)
	assert.True(t, errors.Is(err, chain.ErrUnknownNetwork))
}
