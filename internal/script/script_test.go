package script

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langit/internal/input"
	"langit/internal/scene"
)

const tour = `
- select: rocket
- color: "#ff8000"
- rotate: {z: 30, x: 10}
- translate_by: {x: 0.5}
- scale: 1.5
- scale_by: 1.1
- axis_scale: {y: 0.5}
- tick: 3
- key: [q, "+", r]
- drag: {button: right, from: [10, 10], to: [40, 20], steps: 3}
- wheel: -1
- resize: [800, 400]
- reset:
- frame: rocket-orange
`

func TestParseTour(t *testing.T) {
	s, err := Parse([]byte(tour))
	require.NoError(t, err)
	require.Len(t, s.Steps, 14)

	assert.Equal(t, []scene.Action{{Name: scene.ActSelect, Shape: scene.Rocket}}, s.Steps[0].Actions)

	c := s.Steps[1].Actions[0].Color
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)

	rot := s.Steps[2].Actions
	require.Len(t, rot, 2)
	assert.Equal(t, scene.Action{Name: scene.ActRotate, Axis: scene.X, Value: 10}, rot[0], "axes run x, y, z")
	assert.Equal(t, scene.Action{Name: scene.ActRotate, Axis: scene.Z, Value: 30}, rot[1])

	assert.Equal(t, scene.ActTranslateBy, s.Steps[3].Actions[0].Name)
	assert.Equal(t, scene.Action{Name: scene.ActScale, Value: 1.5}, s.Steps[4].Actions[0])
	assert.Equal(t, scene.ActScaleBy, s.Steps[5].Actions[0].Name)
	assert.Equal(t, scene.Action{Name: scene.ActAxisScale, Axis: scene.Y, Value: 0.5}, s.Steps[6].Actions[0])
	assert.Len(t, s.Steps[7].Actions, 3)

	assert.Equal(t, []input.Event{
		input.KeyPress{Key: input.KeyQ},
		input.KeyPress{Key: input.KeyPlus},
		input.KeyPress{Key: input.KeyR},
	}, s.Steps[8].Events)

	drag := s.Steps[9].Events
	require.Len(t, drag, 5)
	assert.Equal(t, input.MouseDown{Point: image.Pt(10, 10), Button: input.ButtonRight}, drag[0])
	assert.Equal(t, input.MouseMove{Point: image.Pt(20, 13)}, drag[1])
	assert.Equal(t, input.MouseMove{Point: image.Pt(40, 20)}, drag[3])
	assert.Equal(t, input.MouseUp{Point: image.Pt(40, 20), Button: input.ButtonRight}, drag[4])

	assert.Equal(t, []input.Event{input.Scroll{Notches: -1}}, s.Steps[10].Events)
	assert.Equal(t, []input.Event{input.Resize{W: 800, H: 400}}, s.Steps[11].Events)
	assert.Equal(t, scene.ActReset, s.Steps[12].Actions[0].Name)
	assert.Equal(t, "rocket-orange", s.Steps[13].Frame)
	assert.Equal(t, 13, s.Steps[13].Index)
	assert.Equal(t, "#13 frame rocket-orange", s.Steps[13].String())
	assert.Equal(t, []string{"rocket-orange"}, s.Frames())
}

func TestColorList(t *testing.T) {
	s, err := Parse([]byte("- color: [0.2, 0.4, 0.6]\n- color: 00ff00\n"))
	require.NoError(t, err)
	assert.Equal(t, scene.RGB{R: 0.2, G: 0.4, B: 0.6}, s.Steps[0].Actions[0].Color)
	green := s.Steps[1].Actions[0].Color
	assert.InDelta(t, 0.0, green.R, 1e-9)
	assert.InDelta(t, 1.0, green.G, 1e-9)
}

func TestPanelButton(t *testing.T) {
	s, err := Parse([]byte("- button: Left\n- button: up\n"))
	require.NoError(t, err)
	assert.Equal(t, scene.Action{Name: scene.ActTranslateBy, Axis: scene.X, Value: -scene.ButtonStep}, s.Steps[0].Actions[0])
	assert.Equal(t, scene.Action{Name: scene.ActTranslateBy, Axis: scene.Y, Value: scene.ButtonStep}, s.Steps[1].Actions[0])
}

func TestDragDefaults(t *testing.T) {
	s, err := Parse([]byte("- drag: {from: [0, 0], to: [5, 5]}\n"))
	require.NoError(t, err)
	ev := s.Steps[0].Events
	require.Len(t, ev, 3)
	assert.Equal(t, input.ButtonLeft, ev[0].(input.MouseDown).Button)
}

func TestInvalidSteps(t *testing.T) {
	cases := map[string]string{
		"unknown kind":   "- explode: 1\n",
		"two keys":       "- select: star\n  tick: 1\n",
		"bad shape":      "- select: comet\n",
		"bad axis":       "- rotate: {w: 3}\n",
		"empty axes":     "- rotate: {}\n",
		"bad color":      "- color: \"#zz0000\"\n",
		"color range":    "- color: [2, 0, 0]\n",
		"color length":   "- color: [1, 0]\n",
		"zero ticks":     "- tick: 0\n",
		"bad key":        "- key: f13\n",
		"bad button":     "- drag: {button: thumb, from: [0, 0], to: [1, 1]}\n",
		"short drag":     "- drag: {from: [0], to: [1, 1]}\n",
		"bad resize":     "- resize: [100]\n",
		"bad factor":     "- scale_by: 0\n",
		"panel button":   "- button: north\n",
		"slash in frame": "- frame: a/b\n",
		"dup frame":      "- frame: a\n- frame: a\n",
	}
	for name, src := range cases {
		_, err := Parse([]byte(src))
		assert.ErrorIs(t, err, ErrInvalidStep, name)
	}

	_, err := Parse([]byte("- select: [\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidStep)
}

func TestStepIndexInError(t *testing.T) {
	_, err := Parse([]byte("- reset:\n- tick: 2\n- select: comet\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#2 select")
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, os.WriteFile(p, []byte(tour), 0644))
	s, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 14)

	_, err = Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorContains(t, err, "script: read")
}

func TestResizeAllowsZeroHeight(t *testing.T) {
	s, err := Parse([]byte("- resize: [600, 0]\n"))
	require.NoError(t, err)
	assert.Equal(t, []input.Event{input.Resize{W: 600, H: 0}}, s.Steps[0].Events)

	for _, src := range []string{"- resize: [0, 10]\n", "- resize: [10, -1]\n"} {
		_, err := Parse([]byte(src))
		assert.ErrorIs(t, err, ErrInvalidStep, src)
	}
}
