package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/fernandosanchezjr/fastrng/backend/charting"
	"github.com/fernandosanchezjr/fastrng/backend/services/implementation"
	"github.com/fernandosanchezjr/fastrng/backend/storage"
	"github.com/fernandosanchezjr/fastrng/config"
	"github.com/fernandosanchezjr/fastrng/fixtures"
	"github.com/fernandosanchezjr/fastrng/logging"
	"github.com/fernandosanchezjr/fastrng/networking/server"
	"github.com/fernandosanchezjr/fastrng/networking/services"
	"github.com/fernandosanchezjr/fastrng/sources"
	"github.com/fernandosanchezjr/fastrng/utils"
	log "github.com/sirupsen/logrus"
)

const configReloadInterval = 5 * time.Second

var cpuProfile bool

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
}

func reloadConfig() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Error("Could not reload config")
		return
	}
	logging.SetLevel(cfg.Level())
}

func main() {
	flag.Parse()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}
	logging.SetupLogger(cfg.Level())
	if cpuProfile {
		f, err := os.Create("fastrng-backend.prof")
		if err != nil {
			log.WithError(err).Fatal("Could not create profile")
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("Could not start profiling")
		}
		defer pprof.StopCPUProfile()
	}
	db, err := storage.GetDB(cfg.Fixtures.DBPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to open fixture DB")
	}
	defer db.Close()
	store := fixtures.NewStore(db)

	src, err := sources.New(cfg.Source.Kind, cfg.Source.Seed, cfg.Source.Seq)
	if err != nil {
		log.WithError(err).Fatal("Could not create entropy source")
	}
	srv := server.NewServer(cfg.Server.RPCAddress, services.NewEntropyRegistry(services.NewEntropy(src)))
	if err := srv.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start RPC server")
	}
	defer srv.Stop()

	verifier, err := implementation.NewVerifier(store, cfg.Fixtures.VerifySchedule)
	if err != nil {
		log.WithError(err).Fatal("Bad fixture verification schedule")
	}
	verifier.Start()
	defer verifier.Stop()

	sessions := implementation.NewSessions(cfg.Server.SessionTTL)
	defer sessions.Close()
	cs := charting.NewService(store, sessions, charting.ServiceParams{
		Kind:  cfg.Source.Kind,
		Seed:  cfg.Source.Seed,
		Seq:   cfg.Source.Seq,
		N:     16,
		Bins:  20,
		Words: cfg.Fixtures.Words,
		Bytes: cfg.Fixtures.Bytes,
	})
	if err := cs.Start(cfg.Server.HTTPAddress); err != nil {
		log.WithError(err).Fatal("Failed to start HTTP server")
	}
	defer cs.Stop()

	watcher, err := utils.NewFileWatcher(config.GetConfigPath(), configReloadInterval, reloadConfig)
	if err != nil {
		log.WithError(err).Warn("Config reload disabled")
	} else {
		defer watcher.Close()
	}
	log.WithFields(log.Fields{
		"http":   cfg.Server.HTTPAddress,
		"rpc":    cfg.Server.RPCAddress,
		"source": cfg.Source.Kind,
	}).Println("Backend started")
	utils.Wait()
	log.Println("Backend stopping")
}
