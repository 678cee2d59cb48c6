package game

import "github.com/iburimskiy/fireflies/internal/frame"

// Loop owns a running swarm. Run draws one frame and submits itself for the
// next one, so the animation continues until the scheduler stops calling.
type Loop struct {
	swarm     *Swarm
	scheduler frame.Scheduler
	frames    uint64
}

// Start schedules the first frame and returns the loop driving the swarm.
// The swarm must not be touched by the caller afterwards. A swarm starts
// once; later calls fail with ErrRunning.
func (s *Swarm) Start(scheduler frame.Scheduler) (*Loop, error) {
	if scheduler == nil {
		return nil, ErrNoScheduler
	}
	if s.running {
		return nil, ErrRunning
	}

	l := &Loop{swarm: s, scheduler: scheduler}
	s.running = true
	scheduler.RequestFrame(l.Run)
	return l, nil
}

func (l *Loop) Run() {
	l.swarm.Frame()
	l.frames++
	l.scheduler.RequestFrame(l.Run)
}

// Frames reports how many frames have been drawn.
func (l *Loop) Frames() uint64 { return l.frames }
