// Package shapes holds the decorative meshes drawn for each selectable
// shape. Every routine emits a fixed mesh in object space through a
// gfx.Device and reads nothing but the color and texture it is given.
package shapes

import (
	"image"

	"langit/internal/gfx"
	"langit/internal/scene"
)

// DrawFunc emits one shape. c is the fill color for colorable shapes and
// is ignored by the others. tex is nil when the shape's texture failed
// to load.
type DrawFunc func(d gfx.Device, c scene.RGB, tex *image.NRGBA)

// Shape describes one catalog entry.
type Shape struct {
	ID        scene.ShapeID
	Name      string
	Colorable bool
	Animated  bool
	// Lit shapes are drawn with lighting and texturing enabled.
	Lit bool
	// Textured shapes draw nothing without their texture.
	Textured bool
	Default  scene.RGB
	Texture  string
	Draw     DrawFunc
}

// Catalog maps shape ids to their entries.
type Catalog map[scene.ShapeID]Shape

// Default returns the catalog of the eight built-in shapes.
func Default() Catalog {
	entries := []Shape{
		{ID: scene.Lightning, Default: scene.RGB{R: 1, G: 1, B: 0}, Draw: Lightning},
		{ID: scene.Cloud, Default: scene.RGB{R: 1, G: 1, B: 1}, Draw: Cloud},
		{ID: scene.Rainbow, Draw: Rainbow},
		{ID: scene.Rocket, Default: scene.RGB{R: 0.8, G: 0.8, B: 0.8}, Draw: Rocket},
		{ID: scene.Star, Draw: Star},
		{ID: scene.Saturn, Textured: true, Texture: "saturn", Draw: Saturn},
		{ID: scene.Earth, Textured: true, Texture: "earth", Draw: Earth},
		{ID: scene.Moon, Textured: true, Texture: "moon", Draw: Moon},
	}
	c := make(Catalog, len(entries))
	for _, s := range entries {
		s.Name = s.ID.String()
		s.Colorable = s.ID.Colorable()
		s.Animated = s.ID.Animated()
		s.Lit = s.ID.Solid()
		c[s.ID] = s
	}
	return c
}

// Lookup returns the entry for id.
func (c Catalog) Lookup(id scene.ShapeID) (Shape, bool) {
	s, ok := c[id]
	return s, ok && s.Draw != nil
}

// Textures lists the texture names referenced by the catalog.
func (c Catalog) Textures() []string {
	var names []string
	for _, id := range scene.Shapes() {
		if s, ok := c[id]; ok && s.Texture != "" {
			names = append(names, s.Texture)
		}
	}
	return names
}

func rgb(c scene.RGB) gfx.Color {
	return gfx.RGB(float32(c.R), float32(c.G), float32(c.B))
}
