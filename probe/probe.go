// Package probe finds and reads a DS18B20 temperature probe on a one-wire
// bus.
//
//	p, err := probe.Find(bus, log) // logs every address, starts a conversion
//	time.Sleep(p.ConversionTime())
//	mC, err := p.Read()           // and starts the next conversion
package probe

import (
	"time"

	"periph.io/x/conn/v3/onewire"
	"tinygo.org/x/drivers/ds18b20"

	"embeddedpg-go/errcode"
	"embeddedpg-go/x/console"
	"embeddedpg-go/x/mathx"
)

// ROM commands.
const (
	SearchROM   uint8 = 0xF0
	AlarmSearch uint8 = 0xEC
)

// FamilyDS18B20 is the family code in the first ROM byte of a DS18B20.
const FamilyDS18B20 = 0x28

// DefaultResolution is the conversion resolution in bits set by Find.
const DefaultResolution = 12

// Bus is a one-wire master able to enumerate devices. The tinygo onewire
// driver satisfies it on MCUs; SimBus does on hosts.
type Bus interface {
	ds18b20.OneWireDevice
	Search(cmd uint8) ([][]uint8, error)
}

// ROM is a 64-bit device address: family, 48-bit serial, CRC.
type ROM [8]byte

// Family returns the family code.
func (r ROM) Family() byte { return r[0] }

// Valid reports whether the trailing CRC byte matches.
func (r ROM) Valid() bool { return onewire.CalcCRC(r[:7]) == r[7] }

func (r ROM) String() string {
	var c [23]byte
	const hexd = "0123456789abcdef"
	n := 0
	for i, b := range r {
		if i > 0 {
			c[n] = ':'
			n++
		}
		c[n], c[n+1] = hexd[b>>4], hexd[b&0xF]
		n += 2
	}
	return string(c[:n])
}

// NewROM builds a ROM with a valid CRC from a family code and serial.
func NewROM(family byte, serial [6]byte) ROM {
	var r ROM
	r[0] = family
	copy(r[1:7], serial[:])
	r[7] = onewire.CalcCRC(r[:7])
	return r
}

// Probe is one DS18B20 on a bus.
type Probe struct {
	bus  Bus
	dev  ds18b20.Device
	rom  ROM
	bits uint8
}

// Scan lists the addresses on the bus. Addresses with a bad CRC or length are
// dropped.
func Scan(bus Bus) ([]ROM, error) {
	ids, err := bus.Search(SearchROM)
	if err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "probe.search", "", err)
	}
	roms := make([]ROM, 0, len(ids))
	for _, id := range ids {
		if len(id) != len(ROM{}) {
			continue
		}
		var r ROM
		copy(r[:], id)
		if r.Valid() {
			roms = append(roms, r)
		}
	}
	return roms, nil
}

// Find searches the bus and picks the first DS18B20, logging each address
// up to and including it.
// The probe is set to 12-bit resolution and its first conversion is started.
func Find(bus Bus, log *console.Console) (*Probe, error) {
	if log == nil {
		log = console.New(nil, "")
	}
	roms, err := Scan(bus)
	if err != nil {
		return nil, err
	}
	var p *Probe
	for _, r := range roms {
		log.Line().Str("addr: ").Str(r.String()).End()
		if r.Family() != FamilyDS18B20 {
			log.Line().Str("skip family 0x").Hex(uint64(r.Family())).End()
			continue
		}
		p = Attach(bus, r)
		break
	}
	if p == nil {
		log.Print("out of devices")
		return nil, errcode.Wrap(errcode.NoDevice, "probe.find", "no ds18b20 on bus", nil)
	}
	if err := p.SetResolution(DefaultResolution); err != nil {
		return nil, err
	}
	if err := p.Start(); err != nil {
		return nil, err
	}
	return p, nil
}

// Attach binds to a known address without searching.
func Attach(bus Bus, rom ROM) *Probe {
	return &Probe{bus: bus, dev: ds18b20.New(bus), rom: rom, bits: DefaultResolution}
}

// ROM returns the probe address.
func (p *Probe) ROM() ROM { return p.rom }

// Resolution returns the configured resolution in bits.
func (p *Probe) Resolution() uint8 { return p.bits }

// SetResolution writes the configuration register, 9..12 bits.
func (p *Probe) SetResolution(bits uint8) error {
	if !mathx.InRange(bits, 9, 12) {
		return errcode.Wrap(errcode.InvalidParams, "probe.resolution", "want 9..12 bits", nil)
	}
	if err := p.bus.Select(p.rom[:]); err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "probe.resolution", "", err)
	}
	p.dev.ThermometerResolution(p.rom[:], bits)
	p.bits = bits
	return nil
}

// Start begins a temperature conversion.
func (p *Probe) Start() error {
	if err := p.bus.Select(p.rom[:]); err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "probe.start", "", err)
	}
	p.dev.RequestTemperature(p.rom[:])
	return nil
}

// Read returns the last conversion in milli-degrees Celsius and starts the
// next one, also after a CRC mismatch. The caller waits ConversionTime between reads.
func (p *Probe) Read() (int32, error) {
	if err := p.bus.Select(p.rom[:]); err != nil {
		return 0, errcode.Wrap(errcode.MapDriverErr(err), "probe.read", "", err)
	}
	mC, err := p.dev.ReadTemperature(p.rom[:])
	if err != nil {
		// Convert again so the next read does not return this scratchpad.
		if serr := p.Start(); serr != nil {
			return 0, serr
		}
		return 0, errcode.Wrap(errcode.CRCMismatch, "probe.read", p.rom.String(), err)
	}
	if err := p.Start(); err != nil {
		return mC, err
	}
	return mC, nil
}

// ConversionTime is the worst-case conversion time at the probe's
// resolution.
func (p *Probe) ConversionTime() time.Duration { return ConversionTime(p.bits) }

// ConversionTime is the worst-case conversion time at bits resolution:
// 93.75 ms at 9 bits, doubling per bit to 750 ms at 12.
func ConversionTime(bits uint8) time.Duration {
	bits = mathx.Clamp(bits, 9, 12)
	return 93750 * time.Microsecond << (bits - 9)
}
