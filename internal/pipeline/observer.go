// Copyright Akcero Labs Inc., 2026. All rights reserved.

package pipeline

import "go.uber.org/zap"

// Step states reported to observers.
const (
	StateRunning   = "running"
	StateCompleted = "completed"
)

// Step names reported to observers, in execution order.
const (
	StepIdea     = "idea"
	StepBusiness = "business"
	StepTech     = "tech"
	StepDesign   = "design"
	StepMarket   = "market"
	StepTimeline = "timeline"
)

// Observer receives step progress events. Observers must be fast and
// may be called from concurrent synthesizer goroutines; a panicking
// observer is recovered and never fails the run.
type Observer func(step, state string)

// ZapObserver logs step transitions through the given logger.
func ZapObserver(log *zap.Logger) Observer {
	return func(step, state string) {
		log.Info("pipeline step", zap.String("step", step), zap.String("state", state))
	}
}

// notify invokes the observer, swallowing panics.
func (r *Runner) notify(step, state string) {
	if r.observer == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil && r.log != nil {
			r.log.Warn("observer panicked",
				zap.String("step", step),
				zap.String("state", state),
				zap.Any("panic", p))
		}
	}()
	r.observer(step, state)
}
