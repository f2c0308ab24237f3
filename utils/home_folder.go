package utils

import (
	"flag"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

const DefaultHomeFolder = "~/.fastrng"

var homeFolder = DefaultHomeFolder

func init() {
	flag.StringVar(&homeFolder, "home-folder", DefaultHomeFolder, "specify home folder")
}

// SetHomeFolder overrides the -home-folder flag.
func SetHomeFolder(folder string) {
	homeFolder = folder
}

func ExpandHomeFolder() (string, error) {
	return homedir.Expand(homeFolder)
}

func GetHomeFolder() string {
	appHomeFolder, err := ExpandHomeFolder()
	if err != nil {
		log.WithError(err).Fatal("Error parsing home folder")
		return ""
	}
	if err := os.MkdirAll(appHomeFolder, 0700); err != nil {
		log.WithError(err).Fatal("Could not create ", appHomeFolder)
	}
	return appHomeFolder
}

func GetSubFolder(folderPath string) string {
	targetPath := path.Join(GetHomeFolder(), folderPath)
	if err := os.MkdirAll(targetPath, 0700); err != nil {
		log.WithError(err).Fatal("Could not create ", targetPath)
	}
	return targetPath
}
