package backoff

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Strategy computes the delay before retry attempt n (1-indexed).
type Strategy interface {
	Delay(attempt int) time.Duration
}

// Exponential doubles Base on every attempt and adds up to JitterFraction of
// the delay as random jitter. Max caps the delay before jitter; zero means no cap.
type Exponential struct {
	Base           time.Duration
	Max            time.Duration
	JitterFraction float64
}

func NewExponential(base, maxDelay time.Duration) *Exponential {
	return &Exponential{Base: base, Max: maxDelay, JitterFraction: 0.2}
}

func (e *Exponential) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	// avoid overflowing the shift on absurd attempt counts
	shift := min(attempt-1, 30)
	d := time.Duration(1<<shift) * e.Base
	if e.Max > 0 && d > e.Max {
		d = e.Max
	}
	if e.JitterFraction <= 0 {
		return d
	}
	jitter := cryptoRandInt63n(int64(float64(d) * e.JitterFraction))
	return d + time.Duration(jitter)
}

type Constant struct {
	Interval time.Duration
}

func (c Constant) Delay(_ int) time.Duration {
	return c.Interval
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask the high bit so the value stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- safe after masking
	return int64(uval) % n
}
