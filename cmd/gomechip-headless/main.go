// Command gomechip-headless runs a ROM for a fixed number of frames
// without a display, then prints the screen and the register file.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/thelolagemann/gomechip/internal/chip8"
	"github.com/thelolagemann/gomechip/internal/cpu"
	"github.com/thelolagemann/gomechip/pkg/display/null"
	"github.com/thelolagemann/gomechip/pkg/log"
	"github.com/thelolagemann/gomechip/pkg/utils"
	"os"
	"path/filepath"
)

func main() {
	frames := flag.Int("frames", 300, "The number of frames to run")
	ips := flag.Int("ips", chip8.DefaultSpeed, "Instructions executed per second")
	seed := flag.Int64("seed", 1, "Seed for the random number generator")
	preset := flag.String("quirks", "default", "Quirk preset to use. Can be default, vip or schip")
	logLevel := flag.String("log-level", "warn", "The minimum log level: debug, info, warn or error")
	flag.Parse()

	logger := log.New(log.WithLevel(*logLevel))

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <rom>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}

	quirks, ok := cpu.QuirksByName(*preset)
	if !ok {
		logger.Errorf("unknown quirk preset %q", *preset)
		os.Exit(2)
	}

	rom, err := utils.LoadFile(flag.Arg(0))
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		os.Exit(1)
	}

	vm, err := chip8.New(rom,
		chip8.WithLogger(logger),
		chip8.WithQuirks(quirks),
		chip8.WithSeed(*seed),
		chip8.Speed(utils.Clamp(1, *ips, 1_000_000)),
		chip8.Unthrottled(),
		chip8.WithTitle(filepath.Base(flag.Arg(0))),
	)
	if err != nil {
		logger.Errorf("creating machine: %v", err)
		os.Exit(1)
	}

	driver := null.New()
	driver.Frames = *frames

	runErr := vm.Run(context.Background(), driver, nil)

	fmt.Print(vm.Video.String())
	fmt.Println(vm.CPU)
	if vm.CPU.Unknown > 0 {
		fmt.Printf("skipped %d unrecognised opcodes\n", vm.CPU.Unknown)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
