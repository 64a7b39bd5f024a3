package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/beam/unionfind"
)

func TestUnionFind(t *testing.T) {
	u := unionfind.New(6)
	assert.Equal(t, 6, u.Len())
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, u.Find(i))
	}

	u.Union(0, 1)
	u.Union(2, 3)
	assert.True(t, u.Connected(0, 1))
	assert.False(t, u.Connected(1, 2))

	u.Union(1, 3)
	assert.True(t, u.Connected(0, 2))
	assert.False(t, u.Connected(0, 4))

	u.Clear()
	assert.False(t, u.Connected(0, 1))
}

func TestUnionInto(t *testing.T) {
	u := unionfind.New(5)
	u.Union(1, 2)
	u.Union(3, 4)
	u.UnionInto(0, 3)
	assert.Equal(t, 0, u.Find(4))
	assert.Equal(t, 0, u.Find(3))

	u.UnionInto(4, 1)
	assert.Equal(t, 0, u.Find(2))
}

func TestLongChainCompresses(t *testing.T) {
	const n = 10000
	u := unionfind.New(n)
	for i := 1; i < n; i++ {
		u.UnionInto(i, i-1)
	}
	root := u.Find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, u.Find(i))
	}
}
