package main

import (
	"flag"
	"os"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gbc, .gz, .zip or .7z)")
	asModel := flag.String("model", "dmg", "The model to emulate. Can be dmg or cgb")
	frames := flag.Int("frames", 60, "The number of frames to run for")
	out := flag.String("out", "", "Save the last frame to this file (.png or .bmp)")
	scale := flag.Int("scale", 1, "The factor to scale the saved frame by")
	serial := flag.Bool("serial", false, "Print bytes sent over the link port to stdout")
	debug := flag.Bool("debug", false, "Log every executed instruction")
	pprofAddr := flag.String("pprof", "", "Serve pprof on this address (e.g. localhost:6060)")
	statsAddr := flag.String("stats", "", "Serve live runtime stats on this address (e.g. localhost:18066)")
	flag.Parse()

	logger := log.New()
	if *debug {
		logger = log.NewDebug()
	}

	if *pprofAddr != "" {
		startPprof(*pprofAddr, logger)
	}
	if *statsAddr != "" {
		startStatsView(*statsAddr, logger)
	}

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("could not load %s: %v", *romFile, err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{
		gameboy.AsModel(types.StringToModel(*asModel)),
		gameboy.WithLogger(logger),
	}
	if *serial {
		opts = append(opts, gameboy.SerialDebugger(os.Stdout))
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Errorf("could not start: %v", err)
		os.Exit(1)
	}

	for i := 0; i < *frames; i++ {
		gb.Frame()
	}
	logger.Infof("ran %d frames (%d cycles), frame hash %016x", gb.Frames(), gb.Cycles(), utils.FrameHash(gb.Pixels()))

	if *out == "" {
		return
	}
	img := utils.ScaleImage(utils.FrameImage(gb.Pixels()), *scale)
	if err := utils.SaveImage(img, *out); err != nil {
		logger.Errorf("could not save frame: %v", err)
		os.Exit(1)
	}
	logger.Infof("saved frame to %s", *out)
}
