package fixtures

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"time"

	"github.com/fernandosanchezjr/fastrng/utils"
	"github.com/howeyc/crc16"
	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
)

var (
	BucketNotFound = errors.New("bucket not found")
	ErrNotFound    = errors.New("fixture not found")
	ErrCorrupt     = errors.New("fixture record corrupt")
)

var (
	fixturesBucket = []byte("fixtures")
	verifiedBucket = []byte("verified")
)

// Store keeps records in one bbolt bucket, keyed by name. Each value is the
// gob-encoded record followed by a big-endian CRC-16 of the encoding.
type Store struct {
	db *bbolt.DB
}

func NewStore(db *bbolt.DB) *Store {
	return &Store{db: db}
}

func getBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	return getNamedBucket(tx, fixturesBucket)
}

func getNamedBucket(tx *bbolt.Tx, name []byte) (bucket *bbolt.Bucket, err error) {
	if tx.Writable() {
		bucket, err = tx.CreateBucketIfNotExists(name)
	} else {
		bucket = tx.Bucket(name)
		if bucket == nil {
			err = BucketNotFound
		}
	}
	return
}

func encode(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, err
	}
	var sum [2]byte
	binary.BigEndian.PutUint16(sum[:], crc16.ChecksumCCITTFalse(buf.Bytes()))
	buf.Write(sum[:])
	return buf.Bytes(), nil
}

func decode(data []byte) (*Record, error) {
	if len(data) < 2 {
		return nil, ErrCorrupt
	}
	payload, sum := data[:len(data)-2], binary.BigEndian.Uint16(data[len(data)-2:])
	if crc16.ChecksumCCITTFalse(payload) != sum {
		return nil, ErrCorrupt
	}
	rec := &Record{}
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) Put(rec *Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(rec.Name), data)
	})
}

func (s *Store) Get(name string) (rec *Record, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx)
		if errors.Is(err, BucketNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		value := bucket.Get([]byte(name))
		if value == nil {
			return ErrNotFound
		}
		rec, err = decode(value)
		return err
	})
	return
}

func (s *Store) List() (names []string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx)
		if errors.Is(err, BucketNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		return bucket.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return
}

func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getBucket(tx)
		if err != nil {
			return err
		}
		if err = bucket.Delete([]byte(name)); err != nil {
			return err
		}
		verified, err := getNamedBucket(tx, verifiedBucket)
		if err != nil {
			return err
		}
		return verified.Delete([]byte(name))
	})
}

func (s *Store) markVerified(name string, t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getNamedBucket(tx, verifiedBucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(name), utils.TimeToBytes(t))
	})
}

// LastVerified returns when name last passed VerifyAll, or the zero time.
func (s *Store) LastVerified(name string) (t time.Time, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getNamedBucket(tx, verifiedBucket)
		if errors.Is(err, BucketNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		t = utils.BytesToTime(bucket.Get([]byte(name)))
		return nil
	})
	return
}

// VerifyAll checks every stored record and stamps the ones that pass. The
// map holds one entry per record that failed to load or verify.
func (s *Store) VerifyAll() (map[string]error, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	failures := map[string]error{}
	for _, name := range names {
		rec, err := s.Get(name)
		if err == nil {
			err = Verify(rec)
		}
		if err != nil {
			failures[name] = err
			log.WithFields(log.Fields{"name": name, "error": err}).Warn("Fixture failed")
			continue
		}
		if err = s.markVerified(name, time.Now()); err != nil {
			return nil, err
		}
	}
	log.WithFields(log.Fields{
		"fixtures": len(names),
		"failures": len(failures),
	}).Println("Verified fixtures")
	return failures, nil
}
