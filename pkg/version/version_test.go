package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Run("Should expose the ldflags variables", func(t *testing.T) {
		orig := Version
		t.Cleanup(func() { Version = orig })
		Version = "v1.2.3"

		info := Get()

		assert.Equal(t, "v1.2.3", info.Version)
		assert.Equal(t, CommitHash, info.CommitHash)
		assert.Contains(t, info.String(), "version v1.2.3")
		assert.Contains(t, info.String(), "commit: ")
	})
}
