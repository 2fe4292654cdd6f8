package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_HasStableOrderAndSize(t *testing.T) {
	all := All()
	require.Len(t, all, 26)

	assert.Equal(t, Product{"1337-ch3at5", "1337-ch3at5"}, all[0])
	assert.Equal(t, Product{"OTHER PRODUCT", "OTHER PRODUCT"}, all[len(all)-1])

	seen := make(map[string]struct{}, len(all))
	for _, p := range all {
		_, dup := seen[p.Value]
		require.False(t, dup, "duplicate catalog value %q", p.Value)
		seen[p.Value] = struct{}{}
	}
}

func TestSelectOptions_MirrorsCatalog(t *testing.T) {
	all := All()
	opts := SelectOptions()
	require.Len(t, opts, len(all))

	for i, opt := range opts {
		assert.Equal(t, all[i].Value, opt.Value)
		assert.Equal(t, all[i].Label, opt.Label)
	}
}
