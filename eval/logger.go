package eval

// Logger is the narrow logging collaborator the evaluator calls into.
// It is satisfied by a *logrus.Logger / *logrus.Entry (see cmd/sievelang)
// or by nopLogger when the caller doesn't want evaluation traced.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
