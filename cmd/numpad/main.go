package main

import (
	"context"
	"time"

	"embeddedpg-go/board"
	"embeddedpg-go/errcode"
	"embeddedpg-go/services/numpad"
)

func main() {
	// Allow the console to attach before we print.
	time.Sleep(2 * time.Second)

	b, err := board.Open()
	if err != nil {
		halt("open board", err)
	}
	println("[main] numpad on", b.Setup.Name)

	keys, err := b.Keypad("numpad")
	if err != nil {
		halt("keypad", err)
	}
	matrix, err := b.Matrix("numpad")
	if err != nil {
		halt("matrix", err)
	}
	led, err := b.LED("numpad")
	if errcode.Of(err) == errcode.Unsupported {
		led, err = nil, nil
	}
	if err != nil {
		halt("led", err)
	}

	t := b.Ticker()
	defer t.Stop()
	svc := numpad.New(keys, matrix, led, t, b.Log("numpad"))
	if err := svc.Run(context.Background()); err != nil {
		halt("numpad", err)
	}
}

func halt(what string, err error) {
	println("[main]", what, "failed:", err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
