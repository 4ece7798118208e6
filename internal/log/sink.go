package log

import "strings"

const errorPrefix = "Error:"

//Sink forwards plain text messages of the sync engine to a Logger.
//Messages starting with "Error:" are logged at the error level, all others at the info level.
type Sink struct {
	logger Logger
}

func NewSink(logger Logger) *Sink {
	return &Sink{logger: logger}
}

func (s *Sink) Emit(msg string) {
	if strings.HasPrefix(msg, errorPrefix) {
		s.logger.Error(strings.TrimSpace(strings.TrimPrefix(msg, errorPrefix)))
		return
	}
	s.logger.Info(msg)
}
