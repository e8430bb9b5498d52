package main

import (
	"context"
	"time"

	"embeddedpg-go/board"
	"embeddedpg-go/services/thermo"
)

func main() {
	// Allow the console to attach before we print.
	time.Sleep(2 * time.Second)

	b, err := board.Open()
	if err != nil {
		halt("open board", err)
	}
	println("[main] thermo on", b.Setup.Name)

	bus, err := b.OneWire("thermo")
	if err != nil {
		halt("one-wire", err)
	}

	t := b.Ticker()
	defer t.Stop()
	svc := thermo.New(bus, t, b.Log("thermo"), nil)
	if err := svc.Run(context.Background()); err != nil {
		halt("thermo", err)
	}
}

func halt(what string, err error) {
	println("[main]", what, "failed:", err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
