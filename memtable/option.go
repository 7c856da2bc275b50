package memtable

import (
	"github.com/sirupsen/logrus"
)

const (
	maxKeySize   = uint16(1) << 9 // 512B
	maxValueSize = ^uint16(0)     // 64K - 1

	defaultSizeThreshold = 4 * 1024 * 1024 // 4MB
)

type options struct {
	// The maximum number of bytes for a single key. The default value is 512B.
	maxKeyBytes uint16
	// The maximum number of bytes for a single value. The default value is 64KB.
	maxValueBytes uint16

	// The number of key and value bytes after which the memtable reports
	// itself full. The default value is 4MB.
	sizeThreshold int

	logger Logger
}

func defaultOptions() *options {
	return &options{
		maxKeyBytes:   maxKeySize,
		maxValueBytes: maxValueSize,
		sizeThreshold: defaultSizeThreshold,
		logger:        newLogrusLogger(logrus.StandardLogger()),
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

// WithMaxKeyBytes set the maximum number of bytes for a single key.
func WithMaxKeyBytes(maxKeyBytes uint16) Option {
	return newFuncOption(func(o *options) {
		o.maxKeyBytes = maxKeyBytes
	})
}

// WithMaxValueBytes set the maximum number of bytes for a single value.
func WithMaxValueBytes(maxValueBytes uint16) Option {
	return newFuncOption(func(o *options) {
		o.maxValueBytes = maxValueBytes
	})
}

// WithSizeThreshold set the number of bytes after which Full reports true.
func WithSizeThreshold(sizeThreshold int) Option {
	return newFuncOption(func(o *options) {
		o.sizeThreshold = sizeThreshold
	})
}

// WithLogger set the logger, nil means NopLogger.
func WithLogger(logger Logger) Option {
	return newFuncOption(func(o *options) {
		if logger == nil {
			logger = NopLogger()
		}
		o.logger = logger
	})
}
