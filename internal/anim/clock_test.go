package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langit/internal/scene"
)

var _ scene.Clock = (*Clock)(nil)

func TestClockLifecycle(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultPeriod, c.Period())
	assert.False(t, c.Running())
	assert.Nil(t, c.C())

	c.Start()
	c.Start()
	require.True(t, c.Running())

	select {
	case <-c.C():
	case <-time.After(time.Second):
		t.Fatal("clock did not tick")
	}

	c.Stop()
	c.Stop()
	assert.False(t, c.Running())
	assert.Nil(t, c.C())
}

func TestClockDrivesController(t *testing.T) {
	c := New(time.Millisecond)
	ctl := scene.NewController(scene.Orthographic, c)
	ctl.SelectShape(scene.Saturn)
	require.True(t, c.Running())

	for i := 0; i < 3; i++ {
		<-c.C()
		ctl.OnAnimationTick()
	}
	assert.Equal(t, 3.0, ctl.State().Rotation[scene.X])

	ctl.SelectShape(scene.Rainbow)
	assert.False(t, c.Running())
}
