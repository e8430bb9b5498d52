package pinlog

import (
	"bytes"
	"context"
	"testing"

	"embeddedpg-go/board"
	"embeddedpg-go/errcode"
	"embeddedpg-go/hal"
	"embeddedpg-go/x/console"
)

type cancelAfter struct {
	n      int
	cancel context.CancelFunc
}

func (c *cancelAfter) Wait() {
	c.n--
	if c.n <= 0 {
		c.cancel()
	}
}

func TestSampleBitstring(t *testing.T) {
	var out bytes.Buffer
	s := board.SimSetup
	s.LoggedPins = []int{20, 21, 22, 23}
	b, sim := board.OpenSim(s, &out)

	svc := New(func() ([]hal.Input, error) { return b.LoggedPins("pinlog") }, nil, b.Log("pins"))
	if err := svc.Init(); err != nil {
		t.Fatal(err)
	}
	if got := svc.Sample(); got != "10000" {
		t.Fatalf("idle = %q, want 10000", got)
	}

	p21, _ := sim.Pins.Pin(21)
	p23, _ := sim.Pins.Pin(23)
	p21.SetSource(func() bool { return true })
	p23.SetSource(func() bool { return true })
	if got := svc.Sample(); got != "10101" {
		t.Fatalf("sample = %q, want 10101", got)
	}

	p23.FailReads(errcode.HardwareIO)
	if err := svc.Step(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "[pins] 10100\n" {
		t.Fatalf("log = %q", out.String())
	}
}

func TestClaimConflict(t *testing.T) {
	s := board.SimSetup
	s.LoggedPins = []int{30, 30}
	b, _ := board.OpenSim(s, nil)
	if _, err := b.Pins.ClaimOutput("other", 30, false); err != nil {
		t.Fatal(err)
	}
	svc := New(func() ([]hal.Input, error) { return b.LoggedPins("pinlog") }, nil, nil)
	if err := svc.Init(); errcode.Of(err) != errcode.PinInUse {
		t.Fatalf("err = %v, want pin_in_use", err)
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	b, _ := board.OpenSim(board.SimSetup, &out)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc := New(func() ([]hal.Input, error) { return b.LoggedPins("pinlog") }, &cancelAfter{n: 2, cancel: cancel}, console.New(&out, ""))
	if err := svc.Run(ctx); err != nil {
		t.Fatal(err)
	}
	want := "100000000\n100000000\nstopping\n"
	if out.String() != want {
		t.Fatalf("log = %q, want %q", out.String(), want)
	}
}
