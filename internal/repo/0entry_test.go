package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisoryKeyNamespacing(t *testing.T) {
	// locks guarding different kinds of state must never share a name, even
	// when the logical identifiers collide textually
	resultKey := advisoryKey("results", "P|4")
	lineKey := advisoryKey("leaderboard", "4L")
	statsKey := advisoryKey("results", "P|4L")

	assert.NotEqual(t, resultKey, lineKey)
	assert.NotEqual(t, resultKey, statsKey)
	assert.NotEqual(t, lineKey, statsKey)

	// deterministic: racing transactions derive the same lock name
	assert.Equal(t, advisoryKey("results", "P|4"), resultKey)
	assert.Equal(t, advisoryKey("leaderboard", "4L"), lineKey)
}
