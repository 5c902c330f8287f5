package sapling

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing. Only populated when Config.Debug is set.
type debugStats struct {
	eventTime   time.Duration
	processTime time.Duration
	drawTime    time.Duration
	eventCount  int
}

// debugLog writes the frame's stats at debug level.
func (a *App) debugLog(stats debugStats) {
	if !a.cfg.Debug {
		return
	}
	a.log.Debug("frame",
		zap.Duration("events", stats.eventTime),
		zap.Duration("process", stats.processTime),
		zap.Duration("draw", stats.drawTime),
		zap.Int("eventCount", stats.eventCount),
	)
}

// debugMaxNodeCount is the list length above which adding a node warns.
const debugMaxNodeCount = 1000

func debugCheckNodeCount(a *App, list string, count int) {
	if count > debugMaxNodeCount {
		a.log.Warn("node list is large",
			zap.String("list", list),
			zap.Int("count", count),
			zap.Int("threshold", debugMaxNodeCount),
		)
	}
}
