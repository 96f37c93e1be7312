package main

import (
	"time"

	"cluedash-go/board"
	"cluedash-go/services/dashboard"
	"cluedash-go/services/fault"
)

func main() {
	defer fault.Recover()

	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	b, err := board.Take()
	if err != nil {
		fault.Halt(err)
	}
	println("Info: board", b.Name)

	d, err := dashboard.New(b, dashboard.Config{})
	if err != nil {
		fault.Halt(err)
	}

	// Run only returns with the error that stopped the loop.
	fault.Halt(d.Run())
}
