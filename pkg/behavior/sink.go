package behavior

import "log/slog"

// ErrorSink receives errors swallowed by leaf nodes.
type ErrorSink func(n Node, err error)

// Reporter is implemented by nodes that forward errors to an ErrorSink.
type Reporter interface {
	ErrorSink() ErrorSink
	SetErrorSink(sink ErrorSink)
}

// LogErrors returns a sink that logs each error at warn level.
// A nil logger means slog.Default.
func LogErrors(logger *slog.Logger) ErrorSink {
	return func(n Node, err error) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Warn("leaf failed",
			"type", n.Type(),
			"description", n.Description(),
			"error", err,
		)
	}
}

// leaf holds what Action and Condition share.
type leaf struct {
	Base
	sink ErrorSink
}

// ErrorSink returns the sink installed on the leaf, or nil.
func (l *leaf) ErrorSink() ErrorSink { return l.sink }

// SetErrorSink replaces the leaf's sink. A nil sink falls back to LogErrors(nil).
func (l *leaf) SetErrorSink(sink ErrorSink) { l.sink = sink }

func (l *leaf) report(n Node, err error) {
	sink := l.sink
	if sink == nil {
		sink = LogErrors(nil)
	}
	sink(n, err)
}
