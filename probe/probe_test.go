package probe

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"embeddedpg-go/errcode"
	"embeddedpg-go/x/console"
)

func newLog() (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return console.New(&out, "temp"), &out
}

func TestFindPicksFirstDS18B20(t *testing.T) {
	bus := NewSimBus()
	other := bus.AddDevice(NewROM(0x10, [6]byte{9, 9, 9, 9, 9, 9}), 0)
	want := bus.AddProbe([6]byte{1, 2, 3, 4, 5, 6}, 21500)
	later := bus.AddProbe([6]byte{7, 7, 7, 7, 7, 7}, 0)

	log, out := newLog()
	p, err := Find(bus, log)
	if err != nil {
		t.Fatal(err)
	}
	if p.ROM() != want {
		t.Fatalf("picked %v, want %v", p.ROM(), want)
	}
	if n := strings.Count(out.String(), "addr: "); n != 2 {
		t.Fatalf("logged %d addresses, want 2:\n%s", n, out.String())
	}
	if strings.Contains(out.String(), later.String()) {
		t.Fatalf("enumeration continued past the chosen probe:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[temp] addr: "+other.String()) {
		t.Fatalf("other device not logged:\n%s", out.String())
	}
	if bus.Resolution(want) != 12 {
		t.Fatalf("resolution = %d", bus.Resolution(want))
	}
	if bus.Conversions(want) != 1 {
		t.Fatalf("conversion not started")
	}
}

func TestReadTemperature(t *testing.T) {
	bus := NewSimBus()
	rom := bus.AddProbe([6]byte{1}, 25500)
	log, _ := newLog()
	p, err := Find(bus, log)
	if err != nil {
		t.Fatal(err)
	}

	mC, err := p.Read()
	if err != nil || mC != 25500 {
		t.Fatalf("Read = %d, %v; want 25500", mC, err)
	}
	if bus.Conversions(rom) != 2 {
		t.Fatalf("next conversion not started")
	}

	bus.SetTemperature(rom, -10125)
	if mC, _ = p.Read(); mC != 25500 {
		t.Fatalf("Read = %d; the pending conversion predates the change", mC)
	}
	if mC, _ = p.Read(); mC != -10125 {
		t.Fatalf("Read = %d, want -10125", mC)
	}
}

func TestReadBeforeConversionIsPowerOnValue(t *testing.T) {
	bus := NewSimBus()
	rom := bus.AddProbe([6]byte{1}, 20000)
	p := Attach(bus, rom)
	mC, err := p.Read()
	if err != nil || mC != 85000 {
		t.Fatalf("Read = %d, %v; want 85000", mC, err)
	}
}

func TestCRCMismatch(t *testing.T) {
	bus := NewSimBus()
	rom := bus.AddProbe([6]byte{1}, 20000)
	log, _ := newLog()
	p, _ := Find(bus, log)
	bus.CorruptReads(rom, 1)
	bus.SetTemperature(rom, 23500)

	if _, err := p.Read(); errcode.Of(err) != errcode.CRCMismatch {
		t.Fatalf("err = %v, want crc_mismatch", err)
	}
	if bus.Conversions(rom) != 2 {
		t.Fatalf("conversions = %d; a failed read must start the next one", bus.Conversions(rom))
	}
	if mC, err := p.Read(); err != nil || mC != 23500 {
		t.Fatalf("Read after recovery = %d, %v; want the fresh 23500", mC, err)
	}
}

func TestFindNoProbe(t *testing.T) {
	bus := NewSimBus()
	bus.AddDevice(NewROM(0x10, [6]byte{1}), 0)
	log, out := newLog()
	if _, err := Find(bus, log); errcode.Of(err) != errcode.NoDevice {
		t.Fatalf("err = %v, want no_device", err)
	}
	if !strings.Contains(out.String(), "out of devices") {
		t.Fatalf("log:\n%s", out.String())
	}

	if _, err := Find(NewSimBus(), log); errcode.Of(err) != errcode.NoDevice {
		t.Fatalf("empty bus: err = %v", err)
	}
}

func TestSearchFailure(t *testing.T) {
	bus := NewSimBus()
	bus.AddProbe([6]byte{1}, 0)
	bus.Fail(errors.New("bus shorted"))
	log, _ := newLog()
	if _, err := Find(bus, log); errcode.Of(err) != errcode.HardwareIO {
		t.Fatalf("err = %v, want hardware_io", err)
	}
}

func TestAlarmSearchFindsNothing(t *testing.T) {
	bus := NewSimBus()
	bus.AddProbe([6]byte{1}, 0)
	ids, err := bus.Search(AlarmSearch)
	if err != nil || len(ids) != 0 {
		t.Fatalf("alarm search = %v, %v", ids, err)
	}
	if ids, _ = bus.Search(SearchROM); len(ids) != 1 {
		t.Fatalf("rom search = %v", ids)
	}
}

func TestScanDropsBadAddresses(t *testing.T) {
	bus := NewSimBus()
	good := bus.AddProbe([6]byte{1}, 0)
	bad := NewROM(FamilyDS18B20, [6]byte{2})
	bad[7] ^= 0xFF
	bus.AddDevice(bad, 0)

	roms, err := Scan(bus)
	if err != nil {
		t.Fatal(err)
	}
	if len(roms) != 1 || roms[0] != good {
		t.Fatalf("roms = %v", roms)
	}
}

func TestResolution(t *testing.T) {
	bus := NewSimBus()
	rom := bus.AddProbe([6]byte{1}, 21_062)
	p := Attach(bus, rom)
	if err := p.SetResolution(13); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v", err)
	}
	if err := p.SetResolution(9); err != nil {
		t.Fatal(err)
	}
	if bus.Resolution(rom) != 9 || p.ConversionTime() != 93750*time.Microsecond {
		t.Fatalf("resolution %d, time %v", bus.Resolution(rom), p.ConversionTime())
	}
	_ = p.Start()
	if mC, _ := p.Read(); mC != 21000 {
		t.Fatalf("9-bit read = %d, want 21000", mC)
	}
}

func TestConversionTime(t *testing.T) {
	for _, c := range []struct {
		bits uint8
		want time.Duration
	}{
		{9, 93750 * time.Microsecond},
		{10, 187500 * time.Microsecond},
		{11, 375 * time.Millisecond},
		{12, 750 * time.Millisecond},
		{16, 750 * time.Millisecond},
	} {
		if got := ConversionTime(c.bits); got != c.want {
			t.Fatalf("ConversionTime(%d) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestROMString(t *testing.T) {
	r := ROM{0x28, 0xff, 0x01, 0, 0, 0, 0, 0x0a}
	if got := r.String(); got != "28:ff:01:00:00:00:00:0a" {
		t.Fatalf("String = %q", got)
	}
}
