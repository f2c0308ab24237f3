package storage

import (
	"path"
	"time"

	"github.com/fernandosanchezjr/fastrng/utils"
	"go.etcd.io/bbolt"
)

const DBPath = "db"

const openTimeout = 5 * time.Second

func GetDBPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "fixtures.db")
}

// GetDB opens the fixture database at dbPath, or at the default location
// under the home folder when dbPath is empty.
func GetDB(dbPath string) (*bbolt.DB, error) {
	if dbPath == "" {
		dbPath = GetDBPath()
	}
	return bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
}
