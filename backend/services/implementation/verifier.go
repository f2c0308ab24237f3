package implementation

import (
	"sync"
	"time"

	"github.com/fernandosanchezjr/fastrng/fixtures"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Verifier re-checks every stored fixture on a cron schedule.
type Verifier struct {
	store    *fixtures.Store
	cron     *cron.Cron
	mu       sync.Mutex
	runs     int
	lastRun  time.Time
	failures map[string]error
}

func NewVerifier(store *fixtures.Store, schedule string) (*Verifier, error) {
	v := &Verifier{store: store, cron: cron.New()}
	if _, err := v.cron.AddFunc(schedule, v.Run); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Verifier) Start() {
	v.cron.Start()
}

// Stop waits for a running verification to finish.
func (v *Verifier) Stop() {
	<-v.cron.Stop().Done()
}

func (v *Verifier) Run() {
	start := time.Now()
	failures, err := v.store.VerifyAll()
	if err != nil {
		log.WithError(err).Error("Fixture verification failed")
		return
	}
	for name, failure := range failures {
		log.WithFields(log.Fields{"name": name, "error": failure}).Error("Fixture mismatch")
	}
	v.mu.Lock()
	v.runs++
	v.lastRun = start
	v.failures = failures
	v.mu.Unlock()
	log.WithFields(log.Fields{
		"duration": time.Since(start),
		"failures": len(failures),
	}).Println("Fixture verification")
}

// Last returns the run count, the start of the latest run and its failures.
func (v *Verifier) Last() (runs int, lastRun time.Time, failures map[string]error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.runs, v.lastRun, v.failures
}
