package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fernandosanchezjr/fastrng/backend/services/data"
	"github.com/fernandosanchezjr/fastrng/backend/storage"
	"github.com/fernandosanchezjr/fastrng/config"
	"github.com/fernandosanchezjr/fastrng/fixtures"
	"github.com/fernandosanchezjr/fastrng/networking/client"
	"github.com/fernandosanchezjr/fastrng/networking/services"
	"github.com/fernandosanchezjr/fastrng/pcg"
	"github.com/fernandosanchezjr/fastrng/random"
	"github.com/fernandosanchezjr/fastrng/sources"
	"github.com/fernandosanchezjr/fastrng/stats"
	"github.com/fernandosanchezjr/fastrng/utils"
	log "github.com/sirupsen/logrus"
)

// KindLocal draws from the process-wide clock-seeded pcg generator.
const KindLocal = "local"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrCheckFailed    = errors.New("statistical check failed")
	ErrFixtureFailed  = errors.New("fixture verification failed")
	ErrBadCount       = errors.New("count must not be negative")
)

type command struct {
	name string
	help string
	run  func(cfg *config.Config, args []string, out io.Writer) error
}

var commands []command

func init() {
	commands = []command{
		{"words", "print raw 32-bit generator words", runWords},
		{"values", "print typed values (" + fmt.Sprint(data.Types()) + ")", runValues},
		{"check", "run statistical sanity checks on a source", runCheck},
		{"bench", "measure source throughput", runBench},
		{"fixture-record", "capture a regression fixture into the fixture DB", runFixtureRecord},
		{"fixture-verify", "verify stored regression fixtures", runFixtureVerify},
	}
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(cfg, args[1:], out)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

type sourceFlags struct {
	kind   string
	seed   uint64
	seq    uint64
	remote string
}

func addSourceFlags(fs *flag.FlagSet, cfg *config.Config) *sourceFlags {
	sf := &sourceFlags{}
	fs.StringVar(&sf.kind, "kind", cfg.Source.Kind, "source kind: pcg, xoshiro, mt, crypto or local")
	fs.Uint64Var(&sf.seed, "seed", cfg.Source.Seed, "source seed")
	fs.Uint64Var(&sf.seq, "seq", cfg.Source.Seq, "pcg stream selector")
	fs.StringVar(&sf.remote, "remote", "", "draw from the entropy RPC server at this address instead")
	return sf
}

// withSource runs fn against the selected source. The local generator is
// only borrowed for the duration of fn.
func (sf *sourceFlags) withSource(fn func(src random.Source) error) (err error) {
	switch {
	case sf.remote != "":
		cl := client.NewClient(sf.remote, services.NewEntropyRegistry(nil))
		cl.Start()
		defer cl.Stop()
		return fn(client.NewSource(cl))
	case sf.kind == KindLocal:
		pcg.WithLocal(func(r *pcg.FastRng) {
			err = fn(r)
		})
		return
	}
	src, err := sources.New(sf.kind, sf.seed, sf.seq)
	if err != nil {
		return err
	}
	return fn(src)
}

// checkCounts rejects negative values of the named int flags.
func checkCounts(fs *flag.FlagSet, names ...string) error {
	for _, name := range names {
		if n := fs.Lookup(name).Value.(flag.Getter).Get().(int); n < 0 {
			return fmt.Errorf("%w: -%s %d", ErrBadCount, name, n)
		}
	}
	return nil
}

// recoverSource turns a FillBytes panic into an error.
func recoverSource(err *error) {
	if r := recover(); r != nil {
		var sourceErr *random.SourceError
		if e, ok := r.(error); ok && errors.As(e, &sourceErr) {
			*err = sourceErr
			return
		}
		panic(r)
	}
}

func runWords(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	sf := addSourceFlags(fs, cfg)
	n := fs.Int("n", 8, "number of words")
	hex := fs.Bool("hex", false, "print words in hex")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCounts(fs, "n"); err != nil {
		return err
	}
	return sf.withSource(func(src random.Source) (err error) {
		defer recoverSource(&err)
		for _, w := range data.Words(src, *n) {
			if *hex {
				_, err = fmt.Fprintf(out, "%08x\n", w)
			} else {
				_, err = fmt.Fprintln(out, w)
			}
			if err != nil {
				return
			}
		}
		return
	})
}

func runValues(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("values", flag.ContinueOnError)
	sf := addSourceFlags(fs, cfg)
	typeName := fs.String("type", "f64", "value type")
	n := fs.Int("n", 8, "number of values")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCounts(fs, "n"); err != nil {
		return err
	}
	return sf.withSource(func(src random.Source) (err error) {
		defer recoverSource(&err)
		values, err := data.Draw(src, *typeName, *n)
		if err != nil {
			return err
		}
		for _, v := range values {
			if _, err = fmt.Fprintln(out, v); err != nil {
				return
			}
		}
		return
	})
}

func runCheck(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	sf := addSourceFlags(fs, cfg)
	byteCount := fs.Int("bytes", 1<<20, "bytes for the chi-square test")
	floatCount := fs.Int("floats", 200000, "float64 draws for the moment check")
	words := fs.Int("words", 1<<16, "64-bit words for the bit balance check")
	alpha := fs.Float64("alpha", 0.001, "chi-square significance level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkCounts(fs, "bytes", "floats", "words"); err != nil {
		return err
	}
	return sf.withSource(func(src random.Source) (err error) {
		defer recoverSource(&err)
		var failures []string
		if *byteCount > 0 {
			chi, err := stats.ByteChiSquare(src, *byteCount)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "byte chi-square: %.2f (df %d, p %.4f)\n", chi.Statistic, chi.DegreesOfFreedom, chi.PValue)
			if !chi.Pass(*alpha) {
				failures = append(failures, "byte chi-square")
			}
		}
		if *floatCount > 0 {
			moments := stats.FloatMoments(src, *floatCount)
			_, _ = fmt.Fprintf(out, "float64: mean %.5f variance %.5f min %g max %g out of range %d\n",
				moments.Mean, moments.Variance, moments.Min, moments.Max, moments.OutOfRange)
			if moments.OutOfRange > 0 {
				failures = append(failures, "float64 open interval")
			}
			if moments.Mean < 0.49 || moments.Mean > 0.51 {
				failures = append(failures, "float64 mean")
			}
		}
		if *words > 0 {
			balance := stats.BitBalance(src, *words)
			_, _ = fmt.Fprintf(out, "bit balance: %.5f\n", balance)
			if balance < 0.49 || balance > 0.51 {
				failures = append(failures, "bit balance")
			}
		}
		if len(failures) > 0 {
			return fmt.Errorf("%w: %v", ErrCheckFailed, failures)
		}
		_, err = fmt.Fprintln(out, "ok")
		return
	})
}

func runBench(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	sf := addSourceFlags(fs, cfg)
	byteCount := fs.Int("bytes", 64<<20, "bytes to generate")
	chunk := fs.Int("chunk", 4096, "bytes per fill")
	floatCount := fs.Int("floats", 1<<20, "float64 draws to time")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chunk <= 0 {
		return fmt.Errorf("chunk must be positive, got %d", *chunk)
	}
	if err := checkCounts(fs, "bytes", "floats"); err != nil {
		return err
	}
	return sf.withSource(func(src random.Source) (err error) {
		defer recoverSource(&err)
		buf := make([]byte, *chunk)
		start := time.Now()
		for done := 0; done < *byteCount; done += len(buf) {
			if rest := *byteCount - done; rest < len(buf) {
				buf = buf[:rest]
			}
			random.FillBytes(src, buf)
		}
		elapsed := time.Since(start)
		_, _ = fmt.Fprintf(out, "bytes: %s in %v, %s\n", utils.Bytes(*byteCount), elapsed,
			utils.NewThroughput(*byteCount, elapsed))
		start = time.Now()
		stats.Float64s(src, *floatCount)
		elapsed = time.Since(start)
		_, err = fmt.Fprintf(out, "float64: %d draws in %v, %s\n", *floatCount, elapsed,
			utils.NewThroughput(8**floatCount, elapsed))
		return
	})
}

func openStore(cfg *config.Config) (*fixtures.Store, func(), error) {
	db, err := storage.GetDB(cfg.Fixtures.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return fixtures.NewStore(db), func() { _ = db.Close() }, nil
}

func runFixtureRecord(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fixture-record", flag.ContinueOnError)
	name := fs.String("name", "", "fixture name (required)")
	kind := fs.String("kind", cfg.Source.Kind, "source kind")
	seed := fs.Uint64("seed", cfg.Source.Seed, "source seed")
	seq := fs.Uint64("seq", cfg.Source.Seq, "pcg stream selector")
	words := fs.Int("words", cfg.Fixtures.Words, "words to record")
	byteCount := fs.Int("bytes", cfg.Fixtures.Bytes, "bytes to digest")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("fixture-record needs -name")
	}
	if err := checkCounts(fs, "words", "bytes"); err != nil {
		return err
	}
	rec, err := fixtures.Capture(*name, *kind, *seed, *seq, *words, *byteCount)
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	if err = store.Put(rec); err != nil {
		return err
	}
	log.WithFields(log.Fields{"name": rec.Name, "kind": rec.Kind, "seed": rec.Seed, "seq": rec.Seq}).Println("Recorded fixture")
	_, err = fmt.Fprintf(out, "%s %x\n", rec.Name, rec.Digest)
	return err
}

func runFixtureVerify(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fixture-verify", flag.ContinueOnError)
	name := fs.String("name", "", "verify only this fixture")
	if err := fs.Parse(args); err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	var failures map[string]error
	if *name != "" {
		rec, err := store.Get(*name)
		if err != nil {
			return err
		}
		failures = map[string]error{}
		if err = fixtures.Verify(rec); err != nil {
			failures[*name] = err
		}
	} else if failures, err = store.VerifyAll(); err != nil {
		return err
	}
	names := make([]string, 0, len(failures))
	for failed := range failures {
		names = append(names, failed)
	}
	sort.Strings(names)
	for _, failed := range names {
		_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", failed, failures[failed])
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w: %d fixtures", ErrFixtureFailed, len(failures))
	}
	_, err = fmt.Fprintln(out, "ok")
	return err
}
