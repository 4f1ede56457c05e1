package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_InvalidSpec(t *testing.T) {
	c, _ := newTestCache()
	s := NewSweeper(c, "not a schedule", nil)

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule verification sweep")
}

func TestSweeper_RunReportsCounts(t *testing.T) {
	c, clk := newTestCache()
	c.Issue("a@b.co", "1")
	c.Issue("b@b.co", "2")
	clk.Advance(DefaultTTL + time.Second)
	c.Issue("c@b.co", "3")

	var gotRemoved, gotRemaining int
	s := NewSweeper(c, "@every 1m", func(removed, remaining int) {
		gotRemoved, gotRemaining = removed, remaining
	})
	s.run()

	assert.Equal(t, 2, gotRemoved)
	assert.Equal(t, 1, gotRemaining)
}

func TestSweeper_StartStop(t *testing.T) {
	c, _ := newTestCache()
	s := NewSweeper(c, "@every 1h", nil)

	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}
