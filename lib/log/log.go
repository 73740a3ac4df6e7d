package log

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
)

// Logger returns the named event logger; one per subsystem.
func Logger(system string) *logging.ZapEventLogger {
	return logging.Logger(system)
}

func SetLogLevel(name, level string) error {
	return logging.SetLogLevel(name, level)
}

// SetupLogLevels sets default levels unless GOLOG_LOG_LEVEL is set.
func SetupLogLevels() {
	if _, set := os.LookupEnv("GOLOG_LOG_LEVEL"); !set {
		_ = logging.SetLogLevel("*", "info")
		_ = logging.SetLogLevel("rpc", "error")
	}
}
