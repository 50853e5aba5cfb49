package parking

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/judgeflow/flow"
	"github.com/katalvlaran/judgeflow/threshold"
)

// Option configures Time.
type Option func(*options)

type options struct {
	flowOpts   []flow.Option
	searchOpts []threshold.Option
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger traces every search probe and augmentation to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.flowOpts = append(o.flowOpts, flow.WithLogger(l))
		o.searchOpts = append(o.searchOpts, threshold.WithLogger(l))
	}
}
