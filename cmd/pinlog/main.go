package main

import (
	"context"
	"time"

	"embeddedpg-go/board"
	"embeddedpg-go/hal"
	"embeddedpg-go/services/pinlog"
)

func main() {
	// Allow the console to attach before we print.
	time.Sleep(2 * time.Second)

	b, err := board.Open()
	if err != nil {
		halt("open board", err)
	}
	println("[main] pinlog on", b.Setup.Name, "pins:", len(b.Setup.LoggedPins))

	t := b.Ticker()
	defer t.Stop()
	claim := func() ([]hal.Input, error) { return b.LoggedPins("pinlog") }
	svc := pinlog.New(claim, t, b.Log(""))
	if err := svc.Run(context.Background()); err != nil {
		halt("pinlog", err)
	}
}

func halt(what string, err error) {
	println("[main]", what, "failed:", err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
