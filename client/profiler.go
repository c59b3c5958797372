package client

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	errCaptureCooldown = errors.New("capture on cooldown")
	errAlreadyCapture  = errors.New("already profiling")
)

// recorder is one runtime capture that streams into a file between start and stop
type recorder struct {
	suffix string
	start  func(io.Writer) error
	stop   func()
}

var recorders = []recorder{
	{suffix: ".cpu.prof", start: pprof.StartCPUProfile, stop: pprof.StopCPUProfile},
	{suffix: ".trace", start: trace.Start, stop: trace.Stop},
}

// Profiler records a CPU profile and an execution trace side by side when the frame rate drops
type Profiler struct {
	dir      string
	log      *slog.Logger
	Window   time.Duration
	Cooldown time.Duration

	mu   sync.Mutex
	busy bool
	last time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, log *slog.Logger) *Profiler {
	return &Profiler{
		dir:      dir,
		log:      log,
		Window:   5 * time.Second,
		Cooldown: 10 * time.Second,
	}
}

// CaptureProfile starts a background capture tagged with reason.
// attrs describe the game state at the drop and are logged with the result.
func (p *Profiler) CaptureProfile(reason string, attrs ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.busy {
		return errAlreadyCapture
	}
	if since := time.Since(p.last); since < p.Cooldown {
		return fmt.Errorf("%w for another %v", errCaptureCooldown, (p.Cooldown - since).Round(time.Second))
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.busy = true
	p.last = time.Now()
	base := filepath.Join(p.dir, fmt.Sprintf("fps-drop-%s-%s", p.last.Format("20060102-150405"), reason))

	go func() {
		var g errgroup.Group
		paths := make([]string, len(recorders))
		for i, r := range recorders {
			i, r := i, r
			paths[i] = base + r.suffix
			g.Go(func() error { return p.record(r, paths[i]) })
		}
		err := g.Wait()

		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()

		if err != nil {
			p.log.Error("capture failed", "error", err)
			return
		}
		p.report(paths, attrs)
	}()
	return nil
}

func (p *Profiler) record(r recorder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := r.start(f); err != nil {
		return fmt.Errorf("start %s: %w", r.suffix, err)
	}
	time.Sleep(p.Window)
	r.stop()
	return nil
}

// report logs where the capture went and how big the heap was when it finished
func (p *Profiler) report(paths []string, attrs []any) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	args := append([]any{
		"files", paths,
		"heap_inuse_kb", m.HeapInuse / 1024,
		"num_gc", m.NumGC,
	}, attrs...)
	p.log.Info("frame drop captured", args...)
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// FPSMonitor measures frame rate over half-second windows and reports sustained drops
type FPSMonitor struct {
	Threshold float64
	Warmup    time.Duration
	Cooldown  time.Duration

	start      time.Time
	windowFrom time.Time
	frames     int
	fps        float64
	lastDrop   time.Time
}

// NewFPSMonitor creates a monitor that flags windows below threshold frames per second
func NewFPSMonitor(threshold float64) *FPSMonitor {
	return &FPSMonitor{
		Threshold: threshold,
		Warmup:    3 * time.Second,
		Cooldown:  10 * time.Second,
		fps:       60,
	}
}

// Frame records one frame at now and reports whether a drop should be captured
func (m *FPSMonitor) Frame(now time.Time) bool {
	if m.start.IsZero() {
		m.start, m.windowFrom = now, now
	}
	m.frames++

	elapsed := now.Sub(m.windowFrom)
	if elapsed < 500*time.Millisecond {
		return false
	}
	m.fps = float64(m.frames) / elapsed.Seconds()
	m.frames = 0
	m.windowFrom = now

	if m.fps >= m.Threshold || now.Sub(m.start) < m.Warmup {
		return false
	}
	if !m.lastDrop.IsZero() && now.Sub(m.lastDrop) < m.Cooldown {
		return false
	}
	m.lastDrop = now
	return true
}

// FPS returns the rate measured over the last complete window
func (m *FPSMonitor) FPS() float64 {
	return m.fps
}
