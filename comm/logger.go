package comm

// Logger is the fire-and-forget textual sink Run optionally reports
// SPMD lifecycle events through. go.uber.org/zap's SugaredLogger
// satisfies this interface directly.
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// RunOption customizes a Run invocation.
type RunOption func(*runSettings)

type runSettings struct {
	logger Logger
}

func newRunSettings(opts ...RunOption) runSettings {
	s := runSettings{logger: nopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithLogger attaches a Logger that receives one Debugf call when the
// World launches and one per rank that returns a non-nil error. A nil
// l is a no-op.
func WithLogger(l Logger) RunOption {
	return func(s *runSettings) {
		if l != nil {
			s.logger = l
		}
	}
}
