package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by Apply for an unrecognized action name.
var ErrUnknownAction = errors.New("scene: unknown action")

// ActionName names one controller operation.
type ActionName string

const (
	ActSelect      ActionName = "select"
	ActRotate      ActionName = "rotate"
	ActRotateBy    ActionName = "rotate-by"
	ActTranslate   ActionName = "translate"
	ActTranslateBy ActionName = "translate-by"
	ActScale       ActionName = "scale"
	ActScaleBy     ActionName = "scale-by"
	ActAxisScale   ActionName = "axis-scale"
	ActColor       ActionName = "color"
	ActReset       ActionName = "reset"
	ActTick        ActionName = "tick"
)

// Action is a UI command bound to exactly one controller operation.
// Only the fields the operation reads need to be set.
type Action struct {
	Name  ActionName
	Shape ShapeID
	Axis  Axis
	Value float64
	Color RGB
}

func (a Action) String() string {
	switch a.Name {
	case ActSelect:
		return fmt.Sprintf("%s %s", a.Name, a.Shape)
	case ActRotate, ActRotateBy, ActTranslate, ActTranslateBy, ActAxisScale:
		return fmt.Sprintf("%s %s %g", a.Name, a.Axis, a.Value)
	case ActScale, ActScaleBy:
		return fmt.Sprintf("%s %g", a.Name, a.Value)
	case ActColor:
		return fmt.Sprintf("%s %.3f %.3f %.3f", a.Name, a.Color.R, a.Color.G, a.Color.B)
	}
	return string(a.Name)
}

// Apply dispatches a to the matching operation.
func (c *Controller) Apply(a Action) error {
	switch a.Name {
	case ActSelect:
		c.SelectShape(a.Shape)
	case ActRotate:
		c.SetRotation(a.Axis, a.Value)
	case ActRotateBy:
		c.ApplyRotationDelta(a.Axis, a.Value)
	case ActTranslate:
		c.SetTranslation(a.Axis, a.Value)
	case ActTranslateBy:
		c.ApplyTranslationDelta(a.Axis, a.Value)
	case ActScale:
		c.SetUniformScale(a.Value)
	case ActScaleBy:
		c.ScaleBy(a.Value)
	case ActAxisScale:
		c.SetAxisScale(a.Axis, a.Value)
	case ActColor:
		c.SetShapeColor(a.Color.R, a.Color.G, a.Color.B)
	case ActReset:
		c.Reset()
	case ActTick:
		c.OnAnimationTick()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Name)
	}
	return nil
}

// ButtonStep is the distance moved by one press of a panel arrow button.
const ButtonStep = 0.1

// PanelActions returns the actions behind the translation arrow buttons,
// keyed by button name.
func PanelActions() map[string]Action {
	return map[string]Action{
		"left":  {Name: ActTranslateBy, Axis: X, Value: -ButtonStep},
		"right": {Name: ActTranslateBy, Axis: X, Value: ButtonStep},
		"up":    {Name: ActTranslateBy, Axis: Y, Value: ButtonStep},
		"down":  {Name: ActTranslateBy, Axis: Y, Value: -ButtonStep},
	}
}
