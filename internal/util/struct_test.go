package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mobile-wallet/internal/util"
)

type readinessProbe struct {
	Name    string
	Clock   func() int
	Skipped *int `wire:"-"`
	Deps    map[string]int
	hidden  *int
}

func TestIsStructInitialized(t *testing.T) {
	probe := &readinessProbe{
		Clock: func() int { return 1 },
		Deps:  map[string]int{},
	}
	require.NoError(t, util.IsStructInitialized(probe))

	probe.Deps = nil
	err := util.IsStructInitialized(probe)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Deps")
}

func TestIsStructInitializedNil(t *testing.T) {
	var probe *readinessProbe
	require.Error(t, util.IsStructInitialized(probe))
	require.Error(t, util.IsStructInitialized(42))
}
