package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 90*time.Minute, Remaining(now.Add(90*time.Minute), now))
	assert.Equal(t, time.Duration(0), Remaining(now, now))
	assert.Equal(t, time.Duration(0), Remaining(now.Add(-time.Second), now))
}

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want Parts
	}{
		{name: "zero", d: 0, want: Parts{}},
		{name: "negative", d: -time.Minute, want: Parts{}},
		{name: "seconds only", d: 59 * time.Second, want: Parts{Seconds: 59}},
		{
			name: "full split",
			d:    2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second,
			want: Parts{Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
		},
		{
			name: "sub-second truncates",
			d:    time.Second + 900*time.Millisecond,
			want: Parts{Seconds: 1},
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Split(c.d), c.name)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, PhaseEnded, Classify(0))
	assert.Equal(t, PhaseEnded, Classify(-time.Second))
	assert.Equal(t, PhaseUrgent, Classify(time.Second))
	assert.Equal(t, PhaseUrgent, Classify(UrgentThreshold-time.Second))
	assert.Equal(t, PhaseNormal, Classify(UrgentThreshold))
	assert.Equal(t, PhaseNormal, Classify(48*time.Hour))
}

func TestShouldExtend(t *testing.T) {
	var (
		window = 2 * time.Minute
		end    = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	)

	// inside window
	assert.True(t, ShouldExtend(window, end, end.Add(-time.Minute)))
	assert.True(t, ShouldExtend(window, end, end.Add(-window)))

	// outside window
	assert.False(t, ShouldExtend(window, end, end.Add(-window-time.Second)))

	// after end
	assert.False(t, ShouldExtend(window, end, end))
	assert.False(t, ShouldExtend(window, end, end.Add(time.Second)))

	// disabled
	assert.False(t, ShouldExtend(0, end, end.Add(-time.Second)))
}

func TestExtendedEnd(t *testing.T) {
	var (
		window = 2 * time.Minute
		end    = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
		bidAt  = end.Add(-30 * time.Second)
	)

	// countdown resets to a full window from the bid, not end + window
	assert.Equal(t, bidAt.Add(window), ExtendedEnd(bidAt, window))
	assert.True(t, ExtendedEnd(bidAt, window).After(end))

	// repeated snipes keep pushing the end out
	second := ExtendedEnd(bidAt, window).Add(-time.Second)
	assert.True(t, ExtendedEnd(second, window).After(ExtendedEnd(bidAt, window)))
}
