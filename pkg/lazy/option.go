package lazy

import "github.com/mbeoliero/iou/pkg/log"

// Option configures a Cell
type Option func(*options)

type options struct {
	name   string
	logger log.Logger
}

// WithName labels the cell in errors and log lines.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used to trace initialization. Without it the
// package level logger from pkg/log is used.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
