// Package enum produces directory listings for the UI. It prefers an
// external enumerator (fd by default) and streams its stdout line by
// line; when the binary is missing it falls back to walking the tree
// itself. Every path it publishes is tagged with the generation the run
// was started for, so the consumer can discard output from runs that a
// directory change has made stale.
package enum

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"burrow/internal/config"
	"burrow/internal/eventbus"
	"burrow/internal/logging"
)

// flushEvery bounds how long a discovered path may sit in the pending
// batch before it is published.
const (
	batchSize  = 64
	flushEvery = 25 * time.Millisecond
)

// Service starts and cancels enumeration runs
type Service interface {
	Start(ctx context.Context, generation int, dir string)
	Stop()
}

// enumService is the concrete implementation
type enumService struct {
	bus    eventbus.EventBus
	cfg    config.EnumeratorSettings
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates an enumeration service wired to the bus. It
// subscribes to EnumRequested events, so the UI never holds a direct
// reference to it.
func NewService(bus eventbus.EventBus, cfg config.EnumeratorSettings) Service {
	es := &enumService{
		bus: bus,
		cfg: cfg,
	}

	bus.Subscribe(eventbus.EventEnumRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.EnumRequestedEvent); ok {
			es.Start(context.Background(), event.Generation, event.Dir)
		}
	})

	return es
}

// Start begins a new enumeration run for dir. Any previous run is
// cancelled first; its remaining output is harmless either way because
// the consumer drops lines tagged with a superseded generation.
func (es *enumService) Start(ctx context.Context, generation int, dir string) {
	es.mu.Lock()
	if es.cancel != nil {
		es.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	es.cancel = cancel
	es.mu.Unlock()

	// All bus traffic for the run happens on its own goroutine. Start is
	// called from a bus subscription handler, and a handler that publishes
	// synchronously would block the dispatcher on a full buffer.
	es.wg.Add(1)
	go func() {
		defer es.wg.Done()
		es.bus.Publish(eventbus.EnumStartedEvent{Generation: generation, Dir: dir})

		b := &batcher{bus: es.bus, generation: generation}

		err := es.runExternal(runCtx, b, dir)
		if errors.Is(err, exec.ErrNotFound) {
			logging.Logger.Info("enumerator not found, walking directly",
				"command", es.cfg.Command)
			err = es.walk(runCtx, b, dir)
		}

		if err != nil && runCtx.Err() == nil {
			logging.Logger.Error("enumeration failed", "dir", dir, "err", err)
			es.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("listing %s failed", dir),
				Err:     err,
			})
		}

		b.flush()
		es.bus.Publish(eventbus.EnumCompletedEvent{
			Generation: generation,
			Found:      b.count,
		})
	}()
}

// Stop cancels the current run and waits for its producer to exit
func (es *enumService) Stop() {
	es.mu.Lock()
	if es.cancel != nil {
		es.cancel()
	}
	es.mu.Unlock()

	es.wg.Wait()
}

// runExternal spawns the configured enumerator in dir and streams its
// stdout. Returns exec.ErrNotFound (wrapped) when the binary is absent
// so the caller can fall back to the built-in walker.
func (es *enumService) runExternal(ctx context.Context, b *batcher, dir string) error {
	cmd := exec.CommandContext(ctx, es.cfg.Command, es.argv()...)
	cmd.Dir = dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", es.cfg.Command, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		b.add(line)
	}

	if err := cmd.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("%s exited: %w", es.cfg.Command, err)
	}
	return nil
}

// argv builds the enumerator argument list. Depth and hidden-file
// settings translate to fd flags; other enumerators carry them in the
// configured args.
func (es *enumService) argv() []string {
	args := append([]string{}, es.cfg.Args...)
	if filepath.Base(es.cfg.Command) == "fd" {
		if es.cfg.ShowHidden {
			args = append(args, "--hidden")
		}
		if es.cfg.MaxDepth > 0 {
			args = append(args, "--max-depth", strconv.Itoa(es.cfg.MaxDepth))
		}
	}
	return args
}

// walk lists dir with the standard library when no external enumerator
// is available. Directories are emitted with a trailing separator so
// the view can mark them.
func (es *enumService) walk(ctx context.Context, b *batcher, dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			logging.Logger.Debug("walk error", "path", path, "err", err)
			return nil
		}
		if path == dir {
			return nil
		}

		name := d.Name()
		if !es.cfg.ShowHidden && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}

		if es.cfg.MaxDepth > 0 {
			depth := strings.Count(rel, string(filepath.Separator)) + 1
			if depth > es.cfg.MaxDepth {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			rel += string(filepath.Separator)
		}
		b.add(rel)
		return nil
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("walking %s: %w", dir, err)
	}
	return nil
}

// batcher coalesces discovered paths into batch events so a large tree
// does not flood the bus with one event per line.
type batcher struct {
	bus        eventbus.EventBus
	generation int
	pending    []string
	lastFlush  time.Time
	count      int
}

func (b *batcher) add(path string) {
	b.pending = append(b.pending, path)
	b.count++
	if len(b.pending) >= batchSize || time.Since(b.lastFlush) > flushEvery {
		b.flush()
	}
}

func (b *batcher) flush() {
	if len(b.pending) == 0 {
		return
	}
	batch := make([]string, len(b.pending))
	copy(batch, b.pending)
	b.pending = b.pending[:0]
	b.lastFlush = time.Now()
	b.bus.Publish(eventbus.EntriesFoundBatchEvent{
		Generation: b.generation,
		Paths:      batch,
	})
}
