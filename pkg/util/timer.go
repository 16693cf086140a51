package util

import (
	"fmt"
	"time"

	"github.com/scottcagno/htable/pkg/logger"
)

/*
	usage:

	func foo() {
		defer TimeThis(l, "foo")()
		// code to measure
	}

*/

// TimeThis returns a func that logs, at debug level, the time elapsed
// since TimeThis was called
func TimeThis(l *logger.Logger, msg string) func() {
	start := time.Now()
	return func() {
		l.Debug(FormatTime(msg, start, time.Now()))
	}
}

// FormatTime formats the time between t1 and t2 in seconds
func FormatTime(msg string, t1, t2 time.Time) string {
	return fmt.Sprintf("%s: %0.6f sec\n",
		msg, // the message to print
		float64(t2.Sub(t1).Nanoseconds())/float64(time.Second.Nanoseconds()), // the seconds
	)
}
