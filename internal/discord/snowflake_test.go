package discord

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
)

func TestCreatedAt(t *testing.T) {
	ids := []int64{
		175928847299117063,
		1,
		4194304,
		1234567890123456789,
	}
	for _, raw := range ids {
		want := ((uint64(raw) >> 22) + 1420070400000) / 1000
		assert.Equal(t, int64(want), CreatedAt(snowflake.ID(raw)), "id %d", raw)
	}
}

func TestCreatedAt_KnownID(t *testing.T) {
	// 2016-04-30T11:18:25Z
	assert.Equal(t, int64(1462015105), CreatedAt(snowflake.ID(175928847299117063)))
}

func TestCreatedAt_LeavesLibraryEpoch(t *testing.T) {
	before := snowflake.Epoch
	CreatedAt(snowflake.ID(175928847299117063))
	assert.Equal(t, before, snowflake.Epoch)
	assert.NotEqual(t, Epoch, snowflake.Epoch, "library epoch keeps its own default")
}
