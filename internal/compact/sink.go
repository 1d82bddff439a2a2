package compact

import "go.uber.org/zap"

// Sink receives progress and diagnostic messages from the engine. It replaces
// any ambient global logging: callers supply the sink, the engine never
// mutates shared state.
type Sink interface {
	Start(operation string)
	End(operation string)
	Log(message string)
	Warn(message string)
	Error(message string)
}

// NopSink discards every message. Useful for tests and library callers that
// do not care about diagnostics.
type NopSink struct{}

func (NopSink) Start(string) {}
func (NopSink) End(string)   {}
func (NopSink) Log(string)   {}
func (NopSink) Warn(string)  {}
func (NopSink) Error(string) {}

// ZapSink adapts a zap logger to the Sink interface.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps logger as a Sink. A nil logger yields a sink that discards
// everything.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

// Start records the beginning of a named operation.
func (sink *ZapSink) Start(operation string) {
	sink.logger.Info("starting " + operation)
}

// End records the completion of a named operation.
func (sink *ZapSink) End(operation string) {
	sink.logger.Info("finished " + operation)
}

// Log records an informational message.
func (sink *ZapSink) Log(message string) {
	sink.logger.Info(message)
}

// Warn records a warning that does not change the operation outcome.
func (sink *ZapSink) Warn(message string) {
	sink.logger.Warn(message)
}

// Error records an error message.
func (sink *ZapSink) Error(message string) {
	sink.logger.Error(message)
}

var (
	_ Sink = NopSink{}
	_ Sink = (*ZapSink)(nil)
)
