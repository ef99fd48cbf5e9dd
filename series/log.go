package series

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var pkgLogger atomic.Pointer[logrus.Logger]

// SetLogger sets the logger used by the package. A nil logger restores the
// logrus standard logger.
func SetLogger(l *logrus.Logger) {
	pkgLogger.Store(l)
}

func logger() *logrus.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return logrus.StandardLogger()
}
