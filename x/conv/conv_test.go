package conv

import "testing"

func TestItoaUtoa(t *testing.T) {
	var buf [20]byte
	cases := []struct {
		n    int64
		want string
	}{{0, "0"}, {7, "7"}, {-10125, "-10125"}, {25500, "25500"}, {-9223372036854775808, "-9223372036854775808"}}
	for _, c := range cases {
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := string(Utoa(buf[:], 1234567890)); got != "1234567890" {
		t.Fatalf("Utoa = %q", got)
	}
}

func TestHex(t *testing.T) {
	var buf [16]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{{0, "0"}, {0x48, "48"}, {0x21, "21"}, {0xdeadbeef, "deadbeef"}} {
		if got := string(Hex(buf[:], c.n)); got != c.want {
			t.Fatalf("Hex(%#x) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := string(Byte2Hex(buf[:], 0x0a)); got != "0a" {
		t.Fatalf("Byte2Hex = %q", got)
	}
}

func TestBin(t *testing.T) {
	var buf [64]byte
	for _, c := range []struct {
		v     uint64
		width int
		want  string
	}{
		{0, 0, "0"},
		{0, 4, "0000"},
		{0b0011, 4, "0011"},
		{0b1_0101, 0, "10101"},
		{0b101, 2, "101"},
	} {
		if got := string(Bin(buf[:], c.v, c.width)); got != c.want {
			t.Fatalf("Bin(%b, %d) = %q, want %q", c.v, c.width, got, c.want)
		}
	}
}
