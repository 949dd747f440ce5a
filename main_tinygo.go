//go:build tinygo

package main

import (
	"time"

	"clipbox/app"
	"clipbox/hal"
)

func main() {
	// Let the serial terminal attach before the banner.
	time.Sleep(2 * time.Second)
	app.Run(hal.New())
}
