package log

import (
	"fmt"
	"io"
	glog "log"
	"os"
	"time"

	fcolor "github.com/fatih/color"
	"github.com/litestore-project/litestore/cmd/litestore/color"
)

var DisableColor bool

type Log struct {
	log      *glog.Logger
	logDebug bool
	logTrace bool
}

var std *Log

func Init(out io.Writer, logDebug bool, logTrace bool) {
	if out == nil {
		out = os.Stderr
	}
	std = &Log{
		log:      glog.New(out, "", 0),
		logDebug: logDebug,
		logTrace: logTrace,
	}
}

func Fatal(format string, v ...interface{}) {
	if DisableColor {
		printf(nil, "FATAL", format, v...)
	} else {
		printf(color.Fatal, "FATAL", format, v...)
	}
}

func Error(format string, v ...interface{}) {
	if DisableColor {
		printf(nil, "ERROR", format, v...)
	} else {
		printf(color.Error, "ERROR", format, v...)
	}
}

func Warning(format string, v ...interface{}) {
	if DisableColor {
		printf(nil, "WARNING", format, v...)
	} else {
		printf(color.Warning, "WARNING", format, v...)
	}
}

func Info(format string, v ...interface{}) {
	printf(nil, "INFO", format, v...)
}

func Debug(format string, v ...interface{}) {
	if std == nil || (!std.logDebug && !std.logTrace) {
		return
	}
	printf(nil, "DEBUG", format, v...)
}

func Trace(format string, v ...interface{}) {
	if std == nil || !std.logTrace {
		return
	}
	printf(nil, "TRACE", format, v...)
}

func printf(c *fcolor.Color, level string, format string, v ...interface{}) {
	if std == nil {
		return
	}
	var msg = fmt.Sprintf(format, v...)
	var n = time.Now().UTC()
	var now = n.Format("2006-01-02 15:04:05 MST")
	if c != nil {
		var cf = c.SprintFunc()
		std.log.Printf("%s  %s %s", now, cf(level+":"), msg)
		return
	}
	std.log.Printf("%s  %s: %s", now, level, msg)
}
