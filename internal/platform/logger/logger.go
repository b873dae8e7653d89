package logger

import (
	"log"
	"os"
)

var (
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLogger = log.New(os.Stdout, "INFO: ", flags)
	WarnLogger = log.New(os.Stdout, "WARN: ", flags)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", flags)
}

func Info(msg string, v ...interface{}) {
	InfoLogger.Printf(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	WarnLogger.Printf(msg, v...)
}

func Error(msg string, err error, v ...interface{}) {
	if err != nil {
		ErrorLogger.Printf(msg+": %v", append(v, err)...)
	} else {
		ErrorLogger.Printf(msg, v...)
	}
}
