package numpad

import "embeddedpg-go/drivers/max7219"

// Chess is a checkerboard.
var Chess = max7219.Rows{0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55}

// One draws a small "1" glyph.
var One = max7219.Rows{0x00, 0x00, 0x01, 0xFF, 0xFF, 0x61, 0x00, 0x00}
