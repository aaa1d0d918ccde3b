package idgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const trackingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator is the clock and identifier source the orchestrators depend on.
// The zero value uses the wall clock and the shared math/rand source; tests
// override NowFn and Rand for determinism.
type Generator struct {
	NowFn func() time.Time
	Rand  *rand.Rand
}

func (g *Generator) Now() time.Time {
	if g != nil && g.NowFn != nil {
		return g.NowFn()
	}
	return time.Now().UTC()
}

// EntityID builds ids like "apt_1b9f0c3e" from a short uuid suffix.
func (g *Generator) EntityID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%s", prefix, suffix)
}

// TrackingID returns "TRK" followed by nine uppercase alphanumerics.
func (g *Generator) TrackingID() string {
	var b strings.Builder
	b.WriteString("TRK")
	for i := 0; i < 9; i++ {
		b.WriteByte(trackingCharset[g.intn(len(trackingCharset))])
	}
	return b.String()
}

// OTP returns a six-digit one-time code.
func (g *Generator) OTP() string {
	return fmt.Sprintf("%06d", 100000+g.intn(900000))
}

func (g *Generator) intn(n int) int {
	if g != nil && g.Rand != nil {
		return g.Rand.Intn(n)
	}
	return rand.Intn(n)
}
