package params

import "github.com/sirupsen/logrus"

var globalLogger = logrus.New() // global logger that can be overridden by user.

// SetGlobalLogger allows changing the package-wide default logger.
func SetGlobalLogger(l *logrus.Logger) {
	if l != nil {
		globalLogger = l
	}
}
