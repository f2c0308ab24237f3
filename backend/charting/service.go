package charting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/fernandosanchezjr/fastrng/backend/services/data"
	"github.com/fernandosanchezjr/fastrng/backend/services/implementation"
	"github.com/fernandosanchezjr/fastrng/fixtures"
	"github.com/fernandosanchezjr/fastrng/random"
	"github.com/fernandosanchezjr/fastrng/sources"
	"github.com/fernandosanchezjr/fastrng/stats"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Service struct {
	store    *fixtures.Store
	sessions *implementation.Sessions
	defaults ServiceParams
	server   *http.Server
}

func NewService(store *fixtures.Store, sessions *implementation.Sessions, defaults ServiceParams) *Service {
	return &Service{store: store, sessions: sessions, defaults: defaults}
}

func (cs *Service) Router() *httprouter.Router {
	router := httprouter.New()
	router.GET("/words/:kind", cs.GetWords)
	router.GET("/values/:type", cs.GetValues)
	router.POST("/sessions/:name", cs.CreateSession)
	router.GET("/sessions/:name", cs.GetSession)
	router.DELETE("/sessions/:name", cs.DeleteSession)
	router.GET("/sessions/:name/next", cs.NextSession)
	router.GET("/histogram", cs.GetHistogram)
	router.GET("/fixtures", cs.ListFixtures)
	router.POST("/fixtures/:name", cs.RecordFixture)
	router.GET("/fixtures/:name/verify", cs.VerifyFixture)
	router.PanicHandler = func(w http.ResponseWriter, request *http.Request, v interface{}) {
		log.WithFields(log.Fields{"path": request.URL, "panic": v}).Error("Request panic")
		writeError(w, http.StatusInternalServerError, fmt.Errorf("%v", v))
	}
	return router
}

// Start listens on address and serves in the background.
func (cs *Service) Start(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	cs.server = &http.Server{Handler: cs.Router()}
	go func() {
		if err := cs.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("HTTP server stopped")
		}
	}()
	log.WithField("address", listener.Addr()).Println("HTTP server started")
	return nil
}

func (cs *Service) Stop() {
	if cs.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := cs.server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("HTTP server shutdown")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Error encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, sources.ErrUnknownKind), errors.Is(err, data.ErrUnknownType),
		errors.Is(err, ErrBadParams), errors.Is(err, fixtures.ErrNotDeterministic),
		errors.Is(err, fixtures.ErrBadCount), errors.Is(err, data.ErrBadCount):
		return http.StatusBadRequest
	case errors.Is(err, implementation.ErrSessionNotFound), errors.Is(err, fixtures.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (cs *Service) params(w http.ResponseWriter, request *http.Request) (*ServiceParams, bool) {
	params, err := ParseServiceParams(request.URL.Query(), cs.defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return params, true
}

func (cs *Service) source(w http.ResponseWriter, kind string, params *ServiceParams) (random.Source, bool) {
	src, err := sources.New(kind, params.Seed, params.Seq)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return nil, false
	}
	return src, true
}

func (cs *Service) GetWords(w http.ResponseWriter, request *http.Request, ps httprouter.Params) {
	params, ok := cs.params(w, request)
	if !ok {
		return
	}
	src, ok := cs.source(w, ps.ByName("kind"), params)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, data.Words(src, params.N))
}

func (cs *Service) GetValues(w http.ResponseWriter, request *http.Request, ps httprouter.Params) {
	params, ok := cs.params(w, request)
	if !ok {
		return
	}
	src, ok := cs.source(w, params.Kind, params)
	if !ok {
		return
	}
	values, err := data.Draw(src, ps.ByName("type"), params.N)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

func (cs *Service) CreateSession(w http.ResponseWriter, request *http.Request, ps httprouter.Params) {
	params, ok := cs.params(w, request)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, cs.sessions.Create(ps.ByName("name"), params.Seed, params.Seq))
}

func (cs *Service) GetSession(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	session, err := cs.sessions.Get(ps.ByName("name"))
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (cs *Service) DeleteSession(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	if !cs.sessions.Remove(ps.ByName("name")) {
		writeError(w, http.StatusNotFound, implementation.ErrSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (cs *Service) NextSession(w http.ResponseWriter, request *http.Request, ps httprouter.Params) {
	params, ok := cs.params(w, request)
	if !ok {
		return
	}
	words, err := cs.sessions.Next(ps.ByName("name"), params.N)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

func (cs *Service) GetHistogram(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	startTime := time.Now()
	params, ok := cs.params(w, request)
	if !ok {
		return
	}
	src, ok := cs.source(w, params.Kind, params)
	if !ok {
		return
	}
	edges, counts := stats.Histogram(stats.Float64s(src, params.N), params.Bins)
	title := fmt.Sprintf("%s f64 histogram, seed %d seq %d", params.Kind, params.Seed, params.Seq)
	bar := BuildHistogram(title, edges, counts, params.Refresh)
	if err := bar.Render(w); err != nil {
		log.WithError(err).Error("Error rendering chart")
	}
	log.WithFields(log.Fields{
		"elapsedTime": time.Since(startTime),
		"draws":       params.N,
		"path":        request.URL,
	}).Println("Chart request")
}

type fixtureEntry struct {
	Name         string
	LastVerified time.Time
}

func (cs *Service) ListFixtures(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	names, err := cs.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	entries := make([]fixtureEntry, 0, len(names))
	for _, name := range names {
		last, err := cs.store.LastVerified(name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		entries = append(entries, fixtureEntry{Name: name, LastVerified: last})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (cs *Service) RecordFixture(w http.ResponseWriter, request *http.Request, ps httprouter.Params) {
	params, ok := cs.params(w, request)
	if !ok {
		return
	}
	rec, err := fixtures.Capture(ps.ByName("name"), params.Kind, params.Seed, params.Seq, params.Words, params.Bytes)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	if err = cs.store.Put(rec); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

type verifyResult struct {
	Name  string
	OK    bool
	Error string `json:",omitempty"`
}

func (cs *Service) VerifyFixture(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	rec, err := cs.store.Get(name)
	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}
	result := verifyResult{Name: name, OK: true}
	if err = fixtures.Verify(rec); err != nil {
		result.OK = false
		result.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, result)
}
