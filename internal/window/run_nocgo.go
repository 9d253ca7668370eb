//go:build tinygo || !cgo

package window

import (
	"context"
	"errors"
)

// Run reports that the window needs a cgo build.
func Run(ctx context.Context, opts Options) error {
	return errors.New("window: built without cgo; use langit-render for headless output")
}
