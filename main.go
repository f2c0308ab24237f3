package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/fernandosanchezjr/fastrng/config"
	"github.com/fernandosanchezjr/fastrng/logging"
	log "github.com/sirupsen/logrus"
)

var cpuProfile bool

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.Usage = usage
}

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] <command> [command flags]\n\nCommands:\n", os.Args[0])
	for _, c := range commands {
		_, _ = fmt.Fprintf(out, "  %-15s %s\n", c.name, c.help)
	}
	_, _ = fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}
	logging.SetupConsoleLogger(cfg.Level())
	if cpuProfile {
		f, err := os.Create("fastrng.prof")
		if err != nil {
			log.WithError(err).Fatal("Could not create profile")
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("Could not start profiling")
		}
		defer pprof.StopCPUProfile()
	}
	if err = run(cfg, flag.Args(), os.Stdout); err != nil {
		log.WithError(err).Error("Command failed")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
