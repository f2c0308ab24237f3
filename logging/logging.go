package logging

import (
	"io"
	"os"
	"path"

	"github.com/fernandosanchezjr/fastrng/utils"
	"github.com/sirupsen/logrus"
)

const LogPath = "logs"

const LogFile = "fastrng.log"

var logFile *os.File

func getLogFile() *os.File {
	logFolder := utils.GetSubFolder(LogPath)
	f, err := os.OpenFile(path.Join(logFolder, LogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logrus.Fatal("Error opening log file:", err)
		return nil
	}
	return f
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// SetupLogger writes colored text logs to stdout and to the log file under
// the home folder.
func SetupLogger(level logrus.Level) {
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	logrus.RegisterExitHandler(exitHandler)
	logrus.SetLevel(level)
	logFile = getLogFile()
	logrus.SetOutput(io.MultiWriter(logFile, os.Stdout))
}

func SetLevel(level logrus.Level) {
	if logrus.GetLevel() != level {
		logrus.WithField("level", level).Println("Changing log level")
		logrus.SetLevel(level)
	}
}

// SetupConsoleLogger logs to stderr only, leaving stdout to command output.
func SetupConsoleLogger(level logrus.Level) {
	logrus.SetFormatter(&logrus.TextFormatter{})
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
}
