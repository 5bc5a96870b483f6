package monitor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workease/work-ease/internal/notify"
)

const callWarning = "You have been on a call for over 45 minutes, take a 10 minute break"

func (f *fixture) pollCall(offset time.Duration, active bool) {
	f.clock.set(offset)
	f.probe.set(active, nil)
	f.mon.CallLogic(context.Background())
}

func TestCallWarnsAfterLimit(t *testing.T) {
	f := newFixture(t)

	f.pollCall(0, true)
	f.pollCall(45*time.Minute+time.Second, true)

	entries := f.rec.Log().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, callWarning, entries[0].Message)
	assert.Equal(t, base.Add(45*time.Minute+time.Second), entries[0].Time)

	rests := f.rec.Rests()
	require.Len(t, rests, 1)
	assert.Equal(t, notify.Rest{After: 10 * time.Minute, Label: "call"}, rests[0])
}

func TestCallUnderLimitNoWarning(t *testing.T) {
	f := newFixture(t)

	f.pollCall(0, true)
	f.pollCall(44*time.Minute+59*time.Second, true)

	assert.Empty(t, f.rec.Log().Entries())
}

func TestCallSessionsSumWithinGrace(t *testing.T) {
	f := newFixture(t)

	f.pollCall(0, true)               // first call starts
	f.pollCall(25*time.Minute, false) // ends after 25 minutes
	f.pollCall(34*time.Minute, true)  // resumes after a 9 minute break
	f.pollCall(54*time.Minute, true)  // 20 + 25 minutes combined

	entries := f.rec.Log().Entries()
	require.Len(t, entries, 1, "combined durations must trigger the limit")
	assert.Equal(t, callWarning, entries[0].Message)
	assert.Equal(t, base.Add(54*time.Minute), entries[0].Time)
}

func TestCallResetAfterGracePeriod(t *testing.T) {
	f := newFixture(t)

	f.pollCall(0, true)               // first call starts
	f.pollCall(25*time.Minute, false) // ends after 25 minutes
	f.pollCall(35*time.Minute, false) // grace window expires, timers reset
	f.pollCall(36*time.Minute, true)  // resumes after an 11 minute break
	f.pollCall(60*time.Minute, true)  // 24 minutes into the second call

	assert.Empty(t, f.rec.Log().Entries(), "a 10+ minute break must reset the counters")
}

func TestCallWarningRepeatsAfterSnooze(t *testing.T) {
	f := newFixture(t)

	for _, offset := range []time.Duration{0, 45 * time.Minute, 50 * time.Minute, 55 * time.Minute} {
		f.pollCall(offset, true)
	}

	entries := f.rec.Log().Entries()
	require.Len(t, entries, 3, "warning repeats every snooze interval while the call continues")
	for i, want := range []time.Duration{45 * time.Minute, 50 * time.Minute, 55 * time.Minute} {
		assert.Equal(t, callWarning, entries[i].Message)
		assert.Equal(t, base.Add(want), entries[i].Time)
	}
}

func TestCallProbeFailureTreatedAsNoCall(t *testing.T) {
	f := newFixture(t)

	f.clock.set(0)
	f.probe.set(true, errors.New("xdotool exploded"))
	f.mon.CallLogic(context.Background())

	snap := f.mon.Snapshot()
	assert.False(t, snap.CallActive, "a failed probe counts as no call for the cycle")
	assert.True(t, snap.CallStarted.IsZero())
	assert.Empty(t, f.rec.Log().Entries())

	// Recovery on the next cycle.
	f.pollCall(time.Minute, true)
	snap = f.mon.Snapshot()
	assert.True(t, snap.CallActive)
	assert.Equal(t, base.Add(time.Minute), snap.CallStarted)
}
