package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production", "test"} {
		logger, err := New(env)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
	assert.NotNil(t, NewOrNop("development"))
}
