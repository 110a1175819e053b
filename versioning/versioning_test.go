package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	version, commit := Version, Commit

	t.Cleanup(func() {
		Version, Commit = version, commit
	})

	Version = "v1.0.0"
	Commit = ""
	assert.Equal(t, "v1.0.0", Describe())

	Commit = "2ae1ddf74ef7aabbcc"
	assert.Equal(t, "v1.0.0+2ae1ddf7", Describe())

	Commit = "abc"
	assert.Equal(t, "v1.0.0+abc", Describe())
}
