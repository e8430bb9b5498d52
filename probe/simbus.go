//go:build !tinygo

package probe

import (
	"sync"

	"periph.io/x/conn/v3/onewire"

	"embeddedpg-go/errcode"
)

// DS18B20 function commands.
const (
	cmdConvert        uint8 = 0x44
	cmdReadScratchpad uint8 = 0xBE
	cmdWriteScratch   uint8 = 0x4E
)

// powerOnRaw is the scratchpad temperature before the first conversion (85 C).
const powerOnRaw = 0x0550

// SimBus is an in-memory one-wire bus populated with simulated devices.
// Only DS18B20s answer function commands; other families only enumerate.
type SimBus struct {
	mu      sync.Mutex
	devs    []*simDevice
	sel     *simDevice
	out     []byte
	writing int // scratchpad bytes still expected after WRITE SCRATCHPAD
	fail    error
}

type simDevice struct {
	rom      ROM
	milliC   int32
	raw      int16
	th, tl   byte
	config   byte
	corrupt  int
	converts int
}

// NewSimBus returns an empty bus.
func NewSimBus() *SimBus { return &SimBus{} }

// AddProbe attaches a DS18B20 reading milliC and returns its address.
func (b *SimBus) AddProbe(serial [6]byte, milliC int32) ROM {
	return b.AddDevice(NewROM(FamilyDS18B20, serial), milliC)
}

// AddDevice attaches a device with an explicit address.
func (b *SimBus) AddDevice(rom ROM, milliC int32) ROM {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.devs = append(b.devs, &simDevice{rom: rom, milliC: milliC, raw: powerOnRaw, config: 0x7F})
	return rom
}

// SetTemperature changes what the next conversion of rom measures.
func (b *SimBus) SetTemperature(rom ROM, milliC int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d := b.find(rom[:]); d != nil {
		d.milliC = milliC
	}
}

// CorruptReads makes the next n scratchpad reads of rom carry a bad CRC.
func (b *SimBus) CorruptReads(rom ROM, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d := b.find(rom[:]); d != nil {
		d.corrupt = n
	}
}

// Conversions returns how many conversions rom has performed.
func (b *SimBus) Conversions(rom ROM) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d := b.find(rom[:]); d != nil {
		return d.converts
	}
	return 0
}

// Resolution returns the configured resolution of rom in bits.
func (b *SimBus) Resolution(rom ROM) uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d := b.find(rom[:]); d != nil {
		return 9 + (d.config>>5)&0x3
	}
	return 0
}

// Fail makes every bus transaction fail with err (nil clears).
func (b *SimBus) Fail(err error) {
	b.mu.Lock()
	b.fail = err
	b.mu.Unlock()
}

// Search enumerates the attached devices. An alarm search finds none.
func (b *SimBus) Search(cmd uint8) ([][]uint8, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail != nil {
		return nil, b.fail
	}
	if cmd != SearchROM {
		return nil, nil
	}
	ids := make([][]uint8, 0, len(b.devs))
	for _, d := range b.devs {
		id := d.rom
		ids = append(ids, id[:])
	}
	return ids, nil
}

// Select resets the bus and addresses one device.
func (b *SimBus) Select(rom []uint8) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel, b.out, b.writing = nil, nil, 0
	if b.fail != nil {
		return b.fail
	}
	if len(b.devs) == 0 {
		return errcode.Wrap(errcode.NoDevice, "onewire.reset", "no presence pulse", nil)
	}
	b.sel = b.find(rom)
	return nil
}

// Write sends one byte to the selected device.
func (b *SimBus) Write(v uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.sel
	if d == nil || d.rom.Family() != FamilyDS18B20 {
		return
	}
	if b.writing > 0 {
		switch b.writing {
		case 3:
			d.th = v
		case 2:
			d.tl = v
		case 1:
			d.config = v&0x60 | 0x1F
		}
		b.writing--
		return
	}
	switch v {
	case cmdConvert:
		d.convert()
	case cmdReadScratchpad:
		b.out = d.scratchpad()
	case cmdWriteScratch:
		b.writing = 3
	}
}

// Read returns the next byte from the selected device; an idle bus reads 0xFF.
func (b *SimBus) Read() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.out) == 0 {
		return 0xFF
	}
	v := b.out[0]
	b.out = b.out[1:]
	return v
}

// Сrc8 is the Dallas/Maxim CRC-8. The leading С is Cyrillic, matching the
// ds18b20.OneWireDevice method set.
func (b *SimBus) Сrc8(data []uint8) uint8 { return onewire.CalcCRC(data) }

func (b *SimBus) find(rom []uint8) *simDevice {
	if len(rom) != len(ROM{}) {
		return nil
	}
	for _, d := range b.devs {
		if string(d.rom[:]) == string(rom) {
			return d
		}
	}
	return nil
}

func (d *simDevice) convert() {
	raw := int32(d.milliC) * 16 / 1000
	// Undefined low bits read as zero below 12 bits.
	bits := 9 + (d.config>>5)&0x3
	raw &^= int32(1)<<(12-bits) - 1
	d.raw = int16(raw)
	d.converts++
}

func (d *simDevice) scratchpad() []byte {
	sp := []byte{byte(d.raw), byte(uint16(d.raw) >> 8), d.th, d.tl, d.config, 0xFF, 0x0C, 0x10, 0}
	sp[8] = onewire.CalcCRC(sp[:8])
	if d.corrupt > 0 {
		d.corrupt--
		sp[8] ^= 0xA5
	}
	return sp
}
