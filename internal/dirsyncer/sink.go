package dirsyncer

//Sink receives the human-readable progress and error messages of a synchronization run.
//It's called synchronously from the run, so an implementation must not block for long.
type Sink interface {
	Emit(msg string)
}

//SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(msg string)

func (f SinkFunc) Emit(msg string) {
	f(msg)
}
