package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"langit/internal/input"
	"langit/internal/scene"
)

func TestTitle(t *testing.T) {
	s := scene.DefaultState()
	s.Active = scene.Saturn
	s.Rotation[0] = 12.4
	s.Translation[1] = -0.5
	s.UniformScale = 1.5
	got := Title("langit", s)
	assert.Equal(t, "langit | saturn | rot 12 0 0 | pos 0.00 -0.50 0.00 | scale 1.50 (1.00 1.00 1.00)", got)
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.defaults()
	assert.Equal(t, "langit", o.Title)
	assert.Equal(t, 600, o.Width)
	assert.Equal(t, 600, o.Height)
	assert.Equal(t, input.DefaultSpeeds(), o.Speeds)
	assert.NotNil(t, o.Logger)
}
