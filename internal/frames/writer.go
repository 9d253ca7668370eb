// Package frames encodes rendered frames on a worker pool and records
// them in a manifest.
package frames

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"langit/internal/postprocess"
	"langit/internal/session"
)

// ManifestName is the manifest file written to the output directory.
const ManifestName = "manifest.json"

// Options configures a Writer.
type Options struct {
	Dir     string
	Format  string
	Quality int
	Workers int
	Logger  *slog.Logger
	// Progress is the interval between progress log lines; zero disables them.
	Progress time.Duration
}

// Writer is a session.Sink that encodes frames concurrently.
// WriteFrame may block while every worker is busy.
type Writer struct {
	opts Options
	log  *slog.Logger

	jobs      chan session.Frame
	wg        sync.WaitGroup
	done      chan struct{}
	processed atomic.Int64
	queued    atomic.Int64

	// sendMu keeps Close from closing jobs under a blocked WriteFrame.
	sendMu sync.RWMutex
	closed bool

	mu      sync.Mutex
	entries []ManifestEntry
}

var _ session.Sink = (*Writer)(nil)

// NewWriter creates the output directory and starts the workers.
func NewWriter(opts Options) (*Writer, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}
	w := &Writer{
		opts: opts,
		log:  opts.Logger,
		jobs: make(chan session.Frame, opts.Workers*2),
		done: make(chan struct{}),
	}
	for i := 0; i < opts.Workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for f := range w.jobs {
				w.record(w.process(f))
				w.processed.Add(1)
			}
		}()
	}
	if opts.Progress > 0 {
		go w.report(opts.Progress)
	}
	return w, nil
}

// WriteFrame queues f for encoding.
func (w *Writer) WriteFrame(ctx context.Context, f session.Frame) error {
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if w.closed {
		return errors.New("frames: writer closed")
	}
	select {
	case w.jobs <- f:
		w.queued.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close waits for queued frames, writes the manifest and returns it.
// The error joins every frame that failed to encode.
func (w *Writer) Close() (Manifest, error) {
	w.sendMu.Lock()
	if w.closed {
		w.sendMu.Unlock()
		return Manifest{}, errors.New("frames: writer closed")
	}
	w.closed = true
	close(w.jobs)
	w.sendMu.Unlock()

	w.wg.Wait()
	close(w.done)

	sort.Slice(w.entries, func(i, j int) bool { return w.entries[i].Index < w.entries[j].Index })
	m := Manifest{Format: w.opts.Format, Frames: w.entries}

	var errs []error
	for _, e := range m.Frames {
		if e.Error != "" {
			errs = append(errs, fmt.Errorf("frame %q: %s", e.Name, e.Error))
		}
	}
	if err := WriteManifest(filepath.Join(w.opts.Dir, ManifestName), m); err != nil {
		errs = append(errs, fmt.Errorf("frames: manifest: %w", err))
	}
	return m, errors.Join(errs...)
}

func (w *Writer) record(e ManifestEntry) {
	w.mu.Lock()
	w.entries = append(w.entries, e)
	w.mu.Unlock()
}

func (w *Writer) report(every time.Duration) {
	start := time.Now()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			p := w.processed.Load()
			if p > 0 {
				rate := float64(p) / time.Since(start).Seconds()
				w.log.Info("encoding", "done", p, "queued", w.queued.Load(), "frames_per_sec", fmt.Sprintf("%.1f", rate))
			}
		}
	}
}

var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

func (w *Writer) process(f session.Frame) ManifestEntry {
	entry := newEntry(f)
	if f.Image == nil {
		entry.Error = "no image"
		return entry
	}

	img := f.Image
	if f.Width > 0 && f.Height > 0 {
		img = postprocess.Downsample(img, f.Width, f.Height)
	}
	entry.Width, entry.Height = img.Bounds().Dx(), img.Bounds().Dy()

	name := fmt.Sprintf("%03d-%s%s", f.Index, f.Name, Ext(w.opts.Format))
	path := filepath.Join(w.opts.Dir, name)
	out, err := createFile(path)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	err = Encode(out, img, w.opts.Format, w.opts.Quality)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		entry.Error = err.Error()
		return entry
	}
	entry.Image = name
	w.log.Debug("frame written", "name", f.Name, "file", name)
	return entry
}
