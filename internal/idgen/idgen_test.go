package idgen

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityID(t *testing.T) {
	t.Parallel()

	g := &Generator{}
	id := g.EntityID("apt")

	assert.Regexp(t, `^apt_[0-9a-f]{12}$`, id)
	assert.NotEqual(t, id, g.EntityID("apt"))
}

func TestTrackingID(t *testing.T) {
	t.Parallel()

	g := &Generator{Rand: rand.New(rand.NewSource(1))}
	pattern := regexp.MustCompile(`^TRK[A-Z0-9]{9}$`)

	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, g.TrackingID())
	}
}

func TestOTP(t *testing.T) {
	t.Parallel()

	g := &Generator{Rand: rand.New(rand.NewSource(7))}
	for i := 0; i < 20; i++ {
		code := g.OTP()
		require.Len(t, code, 6)
		assert.Regexp(t, `^[1-9][0-9]{5}$`, code)
	}
}

func TestNow_Override(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := &Generator{NowFn: func() time.Time { return fixed }}

	assert.Equal(t, fixed, g.Now())
	assert.False(t, (&Generator{}).Now().IsZero())
}
