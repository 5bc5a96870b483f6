package source

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/workease/work-ease/internal/monitor"
)

// DeviceReader attributes keyboard and mouse events from the X event stream
// to the hands channel. It runs `xinput test-xi2 --root` and parses its
// output line by line.
type DeviceReader struct {
	mon    *monitor.Monitor
	parser eventParser
	logger zerolog.Logger
}

// NewDeviceReader creates a reader for the given resolved device IDs.
func NewDeviceReader(mon *monitor.Monitor, keyboardID, mouseID string, logger zerolog.Logger) *DeviceReader {
	return &DeviceReader{
		mon:    mon,
		parser: eventParser{keyboardID: keyboardID, mouseID: mouseID},
		logger: logger.With().Str("component", "source").Str("source", "device").Logger(),
	}
}

// Name implements monitor.Source.
func (r *DeviceReader) Name() string { return "device" }

// Run blocks reading the event stream until the context is cancelled or the
// xinput process exits.
func (r *DeviceReader) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "xinput", "test-xi2", "--root")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("attaching to xinput: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting xinput event stream: %w", err)
	}
	r.logger.Info().Msg("device event stream started")

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if r.parser.feed(scanner.Text()) {
			r.mon.Check(monitor.Hands)
		}
	}

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading xinput event stream: %w", err)
	}
	if waitErr != nil {
		return fmt.Errorf("xinput event stream exited: %w", waitErr)
	}
	return fmt.Errorf("xinput event stream closed")
}

// eventParser tracks the current event type across the multi-line records
// xinput emits and reports whether a line completes a hands event.
type eventParser struct {
	keyboardID string
	mouseID    string
	event      string
}

func (p *eventParser) feed(line string) bool {
	if strings.Contains(line, "EVENT type") {
		fields := strings.Fields(line)
		p.event = fields[len(fields)-1]
		return false
	}
	if !strings.Contains(line, "device:") {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	device := fields[1]
	if device != p.keyboardID && device != p.mouseID {
		return false
	}
	switch p.event {
	case "(ButtonPress)", "(KeyPress)", "(Motion)":
		return true
	}
	return false
}
