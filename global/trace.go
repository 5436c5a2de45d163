package global

import (
	"github.com/ahratul/inx-chronicle/util"
	"go.uber.org/zap"
)

// Hardcoded tracing. Flip these locally when chasing a specific bug;
// nothing in the engine reads them except the Trace* helpers below.
const (
	TraceMilestoneEnabled = false
	TraceIntervalEnabled  = false
)

// TraceMilestone logs at Info level, prefixed, only when
// TraceMilestoneEnabled is flipped on. Arguments may be lazy
// (func() string / func() any) to avoid formatting cost on the hot path.
func TraceMilestone(log *zap.SugaredLogger, format string, lazyArgs ...any) {
	if TraceMilestoneEnabled {
		log.Infof(">>>>>>>>>>>>>>>> TRACE MILESTONE "+format, util.EvalLazyArgs(lazyArgs...)...)
	}
}

// TraceInterval is the interval-driver counterpart of TraceMilestone.
func TraceInterval(log *zap.SugaredLogger, format string, lazyArgs ...any) {
	if TraceIntervalEnabled {
		log.Infof(">>>>>>>>>>>>>>>> TRACE INTERVAL "+format, util.EvalLazyArgs(lazyArgs...)...)
	}
}