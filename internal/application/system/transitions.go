package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/tilekit/internal/domain/tile"
	"github.com/younwookim/tilekit/internal/domain/transition"
	"github.com/younwookim/tilekit/internal/infrastructure/logger"
)

// ExtractTransitions extracts the union of the stage transitions with at most
// workers stages in flight
func ExtractTransitions(ctx context.Context, workers int, stages ...*tile.Stage) (transition.Transitions, error) {
	log := logger.Named("transitions")

	maps := make([]tile.Map, len(stages))
	for i, s := range stages {
		maps[i] = s
	}

	start := time.Now()
	transitions, err := transition.ExtractParallel(ctx, workers, maps...)
	if err != nil {
		log.Warn("extraction aborted", zap.Error(err))
		return nil, err
	}

	log.Info("extracted transitions",
		zap.Int("stages", len(stages)),
		zap.Int("transitions", len(transitions)),
		zap.Duration("elapsed", time.Since(start)))
	return transitions, nil
}
