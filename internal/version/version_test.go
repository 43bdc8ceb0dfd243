package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	i := Get()
	assert.Equal(t, Version, i.BuildTag)
	assert.Equal(t, runtime.Version(), i.GoVersion)
	assert.Contains(t, i.String(), "Build Tag:    "+Version)
	assert.Equal(t, Version, Short())
}
