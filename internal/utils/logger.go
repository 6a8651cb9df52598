package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	Logger zerolog.Logger
)

func init() {
	// Console writer with color
	consoleWriter := zerolog.ConsoleWriter{Out: goColorableStderr(), TimeFormat: "15:04:05",
		FormatCaller: func(i interface{}) string {
			return filepath.Base(i.(string)) // Show only the filename, not full path
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("|%s|", i) // Add vertical bars around field names
		},
	}

	consoleWriter.FormatLevel = func(i interface{}) string {
		level := strings.ToUpper(i.(string))
		// Colored levels
		switch level {
		case "DEBUG":
			return "\033[36m[" + level + "]\033[0m"
		case "INFO":
			return "\033[32m[" + level + "]\033[0m"
		case "WARN":
			return "\033[33m[" + level + "]\033[0m"
		case "ERROR":
			return "\033[31m[" + level + "]\033[0m"
		default:
			return level
		}
	}

	// Tee into a log file under the OS temp dir so the CLI never litters
	// the directory it is pointed at.
	var out io.Writer = consoleWriter
	logFile, err := os.OpenFile(filepath.Join(os.TempDir(), "translator.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		out = io.MultiWriter(consoleWriter, logFile)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	Logger = zerolog.New(out).With().Timestamp().Caller().Logger()

	// Also replace global log, so log.Info().Msg() etc works everywhere
	log.Logger = Logger
}

// SetVerbose lowers the global level to debug so per-block diagnostics
// (extracted languages, scratch dir paths, code about to run) show up.
func SetVerbose() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// Windows/ANSI-safe colorable output
func goColorableStderr() *os.File {
	return os.Stderr
}
