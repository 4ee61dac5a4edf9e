package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/thelolagemann/gomechip/internal/chip8"
	"github.com/thelolagemann/gomechip/internal/cpu"
	"github.com/thelolagemann/gomechip/internal/timer"
	"github.com/thelolagemann/gomechip/pkg/audio"
	"github.com/thelolagemann/gomechip/pkg/display"
	_ "github.com/thelolagemann/gomechip/pkg/display/null"
	_ "github.com/thelolagemann/gomechip/pkg/display/sdl"
	_ "github.com/thelolagemann/gomechip/pkg/display/terminal"
	_ "github.com/thelolagemann/gomechip/pkg/display/web"
	"github.com/thelolagemann/gomechip/pkg/emulator"
	"github.com/thelolagemann/gomechip/pkg/log"
	"github.com/thelolagemann/gomechip/pkg/utils"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
)

const (
	maxSpeed     = 1_000_000
	maxFrameRate = 1000
)

func main() {
	os.Exit(run())
}

func run() int {
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, "+strings.Join(display.Names(), ", "))
	ips := flag.Int("ips", chip8.DefaultSpeed, "Instructions executed per second")
	fps := flag.Int("fps", chip8.DefaultFrameRate, "Frames per second, also the timer rate")
	seed := flag.Int64("seed", 0, "Seed for the random number generator (default random)")
	preset := flag.String("quirks", "default", "Quirk preset to use. Can be default, vip or schip")
	shift := flag.Bool("quirk-shift", false, "8XY6/8XYE shift VY into VX")
	logic := flag.Bool("quirk-logic", false, "8XY1/8XY2/8XY3 reset VF")
	memory := flag.Bool("quirk-memory", false, "FX55/FX65 increment I")
	clip := flag.Bool("quirk-clip", false, "Clip sprites at the screen edges instead of wrapping")
	release := flag.Bool("quirk-release", false, "FX0A waits for the key to be released")
	state := flag.String("state", "", "The state file to load")
	mute := flag.Bool("mute", false, "Disable the tone generator")
	logLevel := flag.String("log-level", "info", "The minimum log level: debug, info, warn or error")
	pprof := flag.String("pprof", "", "Serve pprof on the given address")

	display.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <rom>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(log.WithLevel(*logLevel))

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	romFile := flag.Arg(0)

	if *pprof != "" {
		go func() {
			if err := http.ListenAndServe(*pprof, nil); err != nil {
				logger.Errorf("pprof: %v", err)
			}
		}()
	}

	quirks, ok := cpu.QuirksByName(*preset)
	if !ok {
		logger.Errorf("unknown quirk preset %q", *preset)
		return 2
	}
	seedSet := false
	// only flags given on the command line override the preset
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quirk-shift":
			quirks.ShiftSourceVY = *shift
		case "quirk-logic":
			quirks.LogicResetsVF = *logic
		case "quirk-memory":
			quirks.LoadStoreIncrementsI = *memory
		case "quirk-clip":
			quirks.ClipSprites = *clip
		case "quirk-release":
			quirks.KeyWaitRelease = *release
		case "seed":
			seedSet = true
		}
	})

	rom, err := utils.LoadFile(romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		return 1
	}

	save, err := emulator.NewSave(romFile + ".state")
	if err != nil {
		logger.Errorf("opening save state: %v", err)
		return 1
	}
	defer func() {
		if err := save.Close(); err != nil {
			logger.Errorf("writing save state: %v", err)
		}
	}()

	opts := []chip8.Opt{
		chip8.WithLogger(logger),
		chip8.WithQuirks(quirks),
		chip8.Speed(utils.Clamp(1, *ips, maxSpeed)),
		chip8.FrameRate(utils.Clamp(1, *fps, maxFrameRate)),
		chip8.WithTitle(filepath.Base(romFile)),
		chip8.WithSave(save),
	}
	if seedSet {
		opts = append(opts, chip8.WithSeed(*seed))
	}
	if *state != "" {
		b, err := os.ReadFile(*state)
		if err != nil {
			logger.Errorf("loading state: %v", err)
			return 1
		}
		opts = append(opts, chip8.WithState(b))
	}

	vm, err := chip8.New(rom, opts...)
	if err != nil {
		logger.Errorf("creating machine: %v", err)
		return 1
	}

	driver := display.GetDriver(*displayDriver)
	// check to make sure the driver is valid
	if driver == nil {
		logger.Errorf("invalid display driver %q, installed: %s", *displayDriver, strings.Join(display.Names(), ", "))
		return 1
	}

	var tone timer.ToneListener
	if !*mute {
		t, err := audio.OpenTone()
		if err != nil {
			logger.Errorf("opening audio device: %v", err)
			return 1
		}
		defer t.Close()
		tone = t
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := vm.Run(ctx, driver, tone); err != nil {
		return 1
	}
	return 0
}
