package logflags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Written by Setup and read on every failed decode without
// synchronization: call Setup before decoding from other goroutines.
var leb128 = false

var logOut io.WriteCloser

var textFormatterInstance logrus.Formatter = &logrus.TextFormatter{
	DisableColors:    true,
	FullTimestamp:    true,
	QuoteEmptyFields: true,
}

func makeLogger(level logrus.Level, fields Fields) Logger {
	if lf := loggerFactory; lf != nil {
		var out io.Writer
		if logOut != nil {
			out = logOut
		}
		return lf(level, fields, out)
	}
	logger := logrus.New().WithFields(logrus.Fields(fields))
	logger.Logger.Formatter = textFormatterInstance
	if logOut != nil {
		logger.Logger.Out = logOut
	}
	logger.Logger.Level = level
	return &logrusLogger{logger}
}

func makeFlaggableLogger(flag bool, fields Fields) Logger {
	if flag {
		return makeLogger(logrus.DebugLevel, fields)
	}
	return makeLogger(logrus.ErrorLevel, fields)
}

// LEB128 returns true if the leb128 package should log the values it
// fails to decode.
func LEB128() bool {
	return leb128
}

// LEB128Logger returns a logger for the leb128 package.
func LEB128Logger() Logger {
	return makeFlaggableLogger(leb128, Fields{"layer": "leb128"})
}

var (
	errLogstrWithoutLog  = errors.New("logstr specified without logFlag")
	errLogDestWithoutLog = errors.New("logDest specified without logFlag")
)

// Setup sets the logging flags based on the contents of logstr, clearing
// the ones logstr does not name.
// If logDest is not empty logs will be redirected to the file descriptor or
// file path specified by logDest.
// Setup is not safe for concurrent use, nor to call while other goroutines
// are decoding.
func Setup(logFlag bool, logstr, logDest string) error {
	leb128 = false
	if !logFlag {
		if logstr != "" {
			return errLogstrWithoutLog
		}
		if logDest != "" {
			return errLogDestWithoutLog
		}
		return nil
	}
	if logDest != "" {
		n, err := strconv.Atoi(logDest)
		if err == nil {
			logOut = os.NewFile(uintptr(n), "leb128-logs")
		} else {
			fh, err := os.Create(logDest)
			if err != nil {
				return fmt.Errorf("could not create log file: %v", err)
			}
			logOut = fh
		}
	}
	if logstr == "" {
		logstr = "leb128"
	}
	v := strings.Split(logstr, ",")
	for _, logcmd := range v {
		switch logcmd {
		case "leb128":
			leb128 = true
		}
	}
	return nil
}

// Close closes the logger output.
func Close() {
	if logOut != nil {
		logOut.Close()
	}
}
