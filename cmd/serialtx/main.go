package main

import (
	"context"
	"time"

	"embeddedpg-go/board"
	"embeddedpg-go/services/serialtx"
)

func main() {
	// Allow the console to attach before we print.
	time.Sleep(2 * time.Second)

	b, err := board.Open()
	if err != nil {
		halt("open board", err)
	}
	println("[main] serialtx on", b.Setup.Name)

	line, err := b.SerialLine("serialtx")
	if err != nil {
		halt("serial line", err)
	}

	t := b.Ticker()
	defer t.Stop()
	svc := serialtx.New(line, t, b.Setup.Message, b.Log("serialtx"))
	if err := svc.Run(context.Background()); err != nil {
		halt("serialtx", err)
	}
}

func halt(what string, err error) {
	println("[main]", what, "failed:", err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
