package tick

import (
	"testing"
	"time"
)

func TestCountdownWaitsAtLeastOnePeriod(t *testing.T) {
	c := New(5 * time.Millisecond)
	defer c.Stop()

	start := time.Now()
	c.WaitN(3)
	if el := time.Since(start); el < 10*time.Millisecond {
		t.Fatalf("3 ticks took %v, want >= 10ms", el)
	}
}

func TestCountdownCoercesPeriod(t *testing.T) {
	c := New(0)
	defer c.Stop()
	if c.Period() != time.Millisecond {
		t.Fatalf("period = %v, want 1ms", c.Period())
	}
	c.Reset(-time.Second)
	if c.Period() != time.Millisecond {
		t.Fatalf("reset period = %v, want 1ms", c.Period())
	}
	c.Reset(2 * time.Millisecond)
	select {
	case <-c.C():
	case <-time.After(time.Second):
		t.Fatal("no tick after Reset")
	}
}
