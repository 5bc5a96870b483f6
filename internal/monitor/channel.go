package monitor

import "time"

// Channel identifies one monitored activity source.
type Channel string

const (
	Feet  Channel = "feet"
	Hands Channel = "hands"
	Voice Channel = "voice"
)

// Channels lists all monitored channels in display order.
var Channels = []Channel{Feet, Hands, Voice}

// Thresholds holds the per-channel exertion limits.
type Thresholds struct {
	// MinRest is the minimum gap between events below which the channel is
	// considered to be in a continuous burst.
	MinRest time.Duration

	// MaxExertion is the maximum tolerated burst duration before a warning.
	MaxExertion time.Duration
}

// channelState is the mutable timing state for one channel. A zero time.Time
// means "no value yet". Guarded by the monitor mutex.
type channelState struct {
	lastActivity  time.Time
	active        bool
	activityStart time.Time
	minRest       time.Duration
	maxExertion   time.Duration
}

// ChannelSnapshot is a consistent read of one channel's state.
type ChannelSnapshot struct {
	Name          Channel
	Active        bool
	LastActivity  time.Time
	ActivityStart time.Time
	MinRest       time.Duration
	MaxExertion   time.Duration
}
