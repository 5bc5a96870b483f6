package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nxadm/tail"
	"github.com/rs/zerolog"

	"github.com/workease/work-ease/internal/monitor"
)

// FileWatcher follows a log-style input file and reports one event on its
// channel per appended line. Used for the feet pedal and voice detection
// streams.
type FileWatcher struct {
	path    string
	channel monitor.Channel
	mon     *monitor.Monitor
	logger  zerolog.Logger
}

// NewFileWatcher creates a watcher for the given file. The file must already
// exist; a missing input source is a fatal startup condition.
func NewFileWatcher(mon *monitor.Monitor, path string, channel monitor.Channel, logger zerolog.Logger) (*FileWatcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s input file: %w", channel, err)
	}
	return &FileWatcher{
		path:    path,
		channel: channel,
		mon:     mon,
		logger:  logger.With().Str("component", "source").Str("source", string(channel)).Logger(),
	}, nil
}

// Name implements monitor.Source.
func (w *FileWatcher) Name() string { return string(w.channel) }

// Run tails the file from its current end until the context is cancelled.
// The file is re-opened on rotation or truncation.
func (w *FileWatcher) Run(ctx context.Context) error {
	t, err := tail.TailFile(w.path, tail.Config{
		Follow: true,
		ReOpen: true,
		Location: &tail.SeekInfo{
			Whence: io.SeekEnd,
		},
		Logger: tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("tailing %s: %w", w.path, err)
	}
	defer t.Cleanup()
	w.logger.Info().Str("path", w.path).Msg("following input file")

	for {
		select {
		case <-ctx.Done():
			if err := t.Stop(); err != nil {
				w.logger.Debug().Err(err).Msg("stopping tail")
			}
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return fmt.Errorf("tail closed for %s: %w", w.path, t.Err())
			}
			if line.Err != nil {
				w.logger.Warn().Err(line.Err).Str("path", w.path).Msg("tail read error")
				continue
			}
			w.mon.Check(w.channel)
		}
	}
}

// TruncateInputs empties the given input files. Used at startup when the
// operator wants a clean slate, matching the historical housekeeping.
func TruncateInputs(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Truncate(path, 0); err != nil {
			return fmt.Errorf("truncating %s: %w", path, err)
		}
	}
	return nil
}
