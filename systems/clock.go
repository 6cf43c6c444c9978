package systems

import (
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock runs one frame of every scheduled animation: the cursor
// spring, the confetti loop, and magnetic transitions. Runs after the input
// systems so callbacks see this frame's pointer.
func UpdateClock(e *ecs.ECS) {
	clock := factory.Clock(e)
	if clock == nil {
		return
	}
	clock.Advance(1 / float64(cfg.C.TPS))
}
