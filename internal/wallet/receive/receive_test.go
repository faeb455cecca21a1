package receive_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/wallet/receive"
)

const address = "0x1111111111111111111111111111111111111111"

type failingClipboard struct{}

func (failingClipboard) WriteText(context.Context, string) error {
	return errors.New("clipboard unavailable")
}

func TestCopySetsAndResetsFlag(t *testing.T) {
	clipboard := &receive.MemoryClipboard{}
	screen := receive.New(address, clipboard, 20*time.Millisecond)
	defer screen.Close()

	assert.False(t, screen.View().Copied)

	require.NoError(t, screen.Copy(t.Context()))
	assert.Equal(t, address, clipboard.Text())
	assert.True(t, screen.View().Copied)

	assert.Eventually(t, func() bool {
		return !screen.View().Copied
	}, time.Second, 5*time.Millisecond)
}

func TestResetFromEarlierCopyIsIgnored(t *testing.T) {
	var resets []func()
	screen := receive.New(address, &receive.MemoryClipboard{}, time.Hour,
		receive.WithAfterFunc(func(d time.Duration, fn func()) *time.Timer {
			resets = append(resets, fn)
			return time.NewTimer(d)
		}),
	)
	defer screen.Close()

	require.NoError(t, screen.Copy(t.Context()))
	require.NoError(t, screen.Copy(t.Context()))
	require.Len(t, resets, 2)

	// the first timer fired before the second copy could stop it
	resets[0]()
	assert.True(t, screen.View().Copied)

	resets[1]()
	assert.False(t, screen.View().Copied)
}

func TestCopyFailureKeepsFlagCleared(t *testing.T) {
	screen := receive.New(address, failingClipboard{}, 0)
	defer screen.Close()

	err := screen.Copy(t.Context())
	require.Error(t, err)
	assert.False(t, screen.View().Copied)
	assert.Equal(t, address, screen.View().Address)
}

func TestCloseStopsTimer(t *testing.T) {
	screen := receive.New(address, &receive.MemoryClipboard{}, time.Hour)

	require.NoError(t, screen.Copy(t.Context()))
	screen.Close()
	assert.False(t, screen.View().Copied)

	require.NoError(t, screen.Copy(t.Context()))
	assert.False(t, screen.View().Copied)
}
