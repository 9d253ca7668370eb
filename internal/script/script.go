// Package script reads scripted sessions: a YAML list of steps that
// drive the scene the same way the window's buttons, fields and input
// devices do.
//
//	- select: saturn
//	- rotate: {x: 30, y: 45}
//	- drag: {button: left, from: [100, 100], to: [160, 100], steps: 6}
//	- color: "#ff8800"
//	- button: left
//	- tick: 90
//	- frame: saturn-tilted
package script

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"langit/internal/input"
	"langit/internal/scene"
)

// ErrInvalidStep is wrapped by every parse error that concerns one step.
var ErrInvalidStep = errors.New("script: invalid step")

// Step is one parsed script entry. Exactly one of Actions, Events or
// Frame is set.
type Step struct {
	// Index is the zero-based position in the script.
	Index int
	// Kind is the YAML key the step was written with.
	Kind    string
	Actions []scene.Action
	Events  []input.Event
	Frame   string
}

func (s Step) String() string {
	if s.Frame != "" {
		return fmt.Sprintf("#%d frame %s", s.Index, s.Frame)
	}
	return fmt.Sprintf("#%d %s", s.Index, s.Kind)
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step
}

// Frames returns the frame names in order.
func (s Script) Frames() []string {
	var names []string
	for _, st := range s.Steps {
		if st.Frame != "" {
			names = append(names, st.Frame)
		}
	}
	return names
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("script: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML script.
func Parse(data []byte) (Script, error) {
	var raw []map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Script{}, fmt.Errorf("script: parse: %w", err)
	}
	s := Script{Steps: make([]Step, 0, len(raw))}
	seen := make(map[string]int)
	for i, m := range raw {
		if len(m) != 1 {
			return Script{}, fmt.Errorf("%w: #%d: want exactly one key, got %d", ErrInvalidStep, i, len(m))
		}
		for kind, node := range m {
			st, err := parseStep(kind, &node)
			if err != nil {
				return Script{}, fmt.Errorf("%w: #%d %s: %v", ErrInvalidStep, i, kind, err)
			}
			if st.Frame != "" {
				if prev, dup := seen[st.Frame]; dup {
					return Script{}, fmt.Errorf("%w: #%d frame: name %q already used by #%d", ErrInvalidStep, i, st.Frame, prev)
				}
				seen[st.Frame] = i
			}
			st.Index = i
			st.Kind = kind
			s.Steps = append(s.Steps, st)
		}
	}
	return s, nil
}

func parseStep(kind string, n *yaml.Node) (Step, error) {
	switch kind {
	case "select":
		var name string
		if err := n.Decode(&name); err != nil {
			return Step{}, err
		}
		id, err := scene.ParseShapeID(name)
		if err != nil {
			return Step{}, err
		}
		return actions(scene.Action{Name: scene.ActSelect, Shape: id}), nil
	case "rotate":
		return axisStep(n, scene.ActRotate)
	case "rotate_by":
		return axisStep(n, scene.ActRotateBy)
	case "translate":
		return axisStep(n, scene.ActTranslate)
	case "translate_by":
		return axisStep(n, scene.ActTranslateBy)
	case "axis_scale":
		return axisStep(n, scene.ActAxisScale)
	case "scale", "scale_by":
		var v float64
		if err := n.Decode(&v); err != nil {
			return Step{}, err
		}
		name := scene.ActScale
		if kind == "scale_by" {
			if v <= 0 {
				return Step{}, fmt.Errorf("factor must be positive, got %g", v)
			}
			name = scene.ActScaleBy
		}
		return actions(scene.Action{Name: name, Value: v}), nil
	case "color":
		c, err := parseColor(n)
		if err != nil {
			return Step{}, err
		}
		return actions(scene.Action{Name: scene.ActColor, Color: c}), nil
	case "reset":
		return actions(scene.Action{Name: scene.ActReset}), nil
	case "tick":
		var count int
		if err := n.Decode(&count); err != nil {
			return Step{}, err
		}
		if count < 1 {
			return Step{}, fmt.Errorf("count must be at least 1, got %d", count)
		}
		st := Step{Actions: make([]scene.Action, count)}
		for i := range st.Actions {
			st.Actions[i] = scene.Action{Name: scene.ActTick}
		}
		return st, nil
	case "button":
		var name string
		if err := n.Decode(&name); err != nil {
			return Step{}, err
		}
		a, ok := scene.PanelActions()[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return Step{}, fmt.Errorf("unknown button %q", name)
		}
		return actions(a), nil
	case "key":
		return keyStep(n)
	case "drag":
		return dragStep(n)
	case "wheel":
		var notches float64
		if err := n.Decode(&notches); err != nil {
			return Step{}, err
		}
		return Step{Events: []input.Event{input.Scroll{Notches: notches}}}, nil
	case "resize":
		var wh []int
		if err := n.Decode(&wh); err != nil {
			return Step{}, err
		}
		if len(wh) != 2 || wh[0] < 1 || wh[1] < 0 {
			return Step{}, fmt.Errorf("want [width, height], got %v", wh)
		}
		return Step{Events: []input.Event{input.Resize{W: wh[0], H: wh[1]}}}, nil
	case "frame":
		var name string
		if err := n.Decode(&name); err != nil {
			return Step{}, err
		}
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, `/\`) {
			return Step{}, fmt.Errorf("bad frame name %q", name)
		}
		return Step{Frame: name}, nil
	}
	return Step{}, fmt.Errorf("unknown step")
}

func actions(a ...scene.Action) Step {
	return Step{Actions: a}
}

// axisStep reads a mapping of axis names to values and emits one action
// per axis in x, y, z order.
func axisStep(n *yaml.Node, name scene.ActionName) (Step, error) {
	var m map[string]float64
	if err := n.Decode(&m); err != nil {
		return Step{}, err
	}
	if len(m) == 0 {
		return Step{}, fmt.Errorf("no axes given")
	}
	var vals [3]*float64
	for k, v := range m {
		a, err := scene.ParseAxis(k)
		if err != nil {
			return Step{}, err
		}
		v := v
		vals[a] = &v
	}
	var st Step
	for a, v := range vals {
		if v != nil {
			st.Actions = append(st.Actions, scene.Action{Name: name, Axis: scene.Axis(a), Value: *v})
		}
	}
	return st, nil
}

// parseColor accepts a hex string ("#ff8800" or "ff8800") or an [r, g, b]
// list with components in [0, 1].
func parseColor(n *yaml.Node) (scene.RGB, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		s := strings.TrimSpace(n.Value)
		if !strings.HasPrefix(s, "#") {
			s = "#" + s
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return scene.RGB{}, err
		}
		return scene.RGB{R: c.R, G: c.G, B: c.B}, nil
	case yaml.SequenceNode:
		var v []float64
		if err := n.Decode(&v); err != nil {
			return scene.RGB{}, err
		}
		if len(v) != 3 {
			return scene.RGB{}, fmt.Errorf("want [r, g, b], got %d values", len(v))
		}
		c := colorful.Color{R: v[0], G: v[1], B: v[2]}
		if !c.IsValid() {
			return scene.RGB{}, fmt.Errorf("components must be in [0, 1], got %v", v)
		}
		return scene.RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	return scene.RGB{}, fmt.Errorf("want hex string or [r, g, b]")
}

func keyStep(n *yaml.Node) (Step, error) {
	var names []string
	if n.Kind == yaml.SequenceNode {
		if err := n.Decode(&names); err != nil {
			return Step{}, err
		}
	} else {
		var name string
		if err := n.Decode(&name); err != nil {
			return Step{}, err
		}
		names = []string{name}
	}
	var st Step
	for _, name := range names {
		k, err := input.ParseKey(name)
		if err != nil {
			return Step{}, err
		}
		st.Events = append(st.Events, input.KeyPress{Key: k})
	}
	if len(st.Events) == 0 {
		return Step{}, fmt.Errorf("no keys given")
	}
	return st, nil
}

type dragSpec struct {
	Button string `yaml:"button"`
	From   []int  `yaml:"from"`
	To     []int  `yaml:"to"`
	Steps  int    `yaml:"steps"`
}

// dragStep expands a drag into press, evenly spaced moves and release.
func dragStep(n *yaml.Node) (Step, error) {
	var d dragSpec
	if err := n.Decode(&d); err != nil {
		return Step{}, err
	}
	if len(d.From) != 2 || len(d.To) != 2 {
		return Step{}, fmt.Errorf("from and to must be [x, y]")
	}
	btn := input.Button(strings.ToLower(d.Button))
	switch btn {
	case "":
		btn = input.ButtonLeft
	case input.ButtonLeft, input.ButtonRight, input.ButtonMiddle:
	default:
		return Step{}, fmt.Errorf("unknown button %q", d.Button)
	}
	if d.Steps < 1 {
		d.Steps = 1
	}
	from := image.Pt(d.From[0], d.From[1])
	to := image.Pt(d.To[0], d.To[1])

	st := Step{Events: []input.Event{input.MouseDown{Point: from, Button: btn}}}
	delta := to.Sub(from)
	for i := 1; i <= d.Steps; i++ {
		p := from.Add(delta.Mul(i).Div(d.Steps))
		st.Events = append(st.Events, input.MouseMove{Point: p})
	}
	st.Events = append(st.Events, input.MouseUp{Point: to, Button: btn})
	return st, nil
}
