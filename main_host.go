//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"clipbox/app"
	"clipbox/hal"
)

func main() {
	var cfg hal.HostConfig
	var hcfg hal.HeadlessConfig
	flag.BoolVar(&cfg.UseMic, "mic", false, "Capture from the system microphone instead of the synthetic source.")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 100, "Poll rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Uint64Var(&hcfg.PressRecordAt, "press-record", 0, "Inject a record press at tick N in headless mode.")
	flag.Uint64Var(&hcfg.PressPlayAt, "press-play", 0, "Inject a play press at tick N in headless mode.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		step, err := app.New(h)
		if err != nil {
			return func() error { return err }
		}
		return step
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg, hcfg, newApp); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
