package sexpr

import (
	"github.com/sirupsen/logrus"
)

var log logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the logger used to trace environment construction and
// evaluation. It is not safe to call while expressions are being evaluated.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDefaultLogger()
	}
	log = l
}
