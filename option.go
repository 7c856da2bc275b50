package avl

import (
	"github.com/sirupsen/logrus"
)

type options struct {
	// logger receives rotation events at debug level. The default is the
	// package level Log.
	logger *logrus.Logger
}

func defaultOptions() *options {
	return &options{
		logger: Log,
	}
}

type Option interface {
	apply(*options)
}

type funcOption struct {
	fn func(*options)
}

func (funcOpt funcOption) apply(o *options) {
	funcOpt.fn(o)
}

func newFuncOption(fn func(*options)) *funcOption {
	return &funcOption{
		fn: fn,
	}
}

// WithLogger set the logger used to report rebalancing of the tree.
// A nil logger disables logging.
func WithLogger(logger *logrus.Logger) Option {
	return newFuncOption(func(o *options) {
		o.logger = logger
	})
}
