package run

import "fmt"

//WithError calls fn and turns a panic inside it into an error.
func WithError(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = asError(p)
		}
	}()

	return fn()
}

//Go calls fn in a new goroutine and hands its result (or its panic, as an error) to done.
//done is called exactly once, from that goroutine.
func Go(fn func() error, done func(error)) {
	go func() {
		done(WithError(fn))
	}()
}

func asError(p interface{}) error {
	if perr, ok := p.(error); ok {
		return perr
	}
	return fmt.Errorf("panic: %v", p)
}
