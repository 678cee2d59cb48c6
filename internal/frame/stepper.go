package frame

// Stepper is a manually advanced scheduler. Each Step runs the callback that
// was pending when Step was called; callbacks submitted while it runs wait
// for the next Step.
type Stepper struct {
	pending  func()
	frames   int
	requests int
}

func NewStepper() *Stepper {
	return &Stepper{}
}

func (s *Stepper) RequestFrame(cb func()) {
	s.requests++
	s.pending = cb
}

// Step runs the pending callback and reports whether there was one.
func (s *Stepper) Step() bool {
	cb := s.pending
	if cb == nil {
		return false
	}
	s.pending = nil
	cb()
	s.frames++
	return true
}

// Run steps up to n times and returns how many frames ran.
func (s *Stepper) Run(n int) int {
	ran := 0
	for ; ran < n; ran++ {
		if !s.Step() {
			break
		}
	}
	return ran
}

func (s *Stepper) Pending() bool { return s.pending != nil }

// Frames is the number of callbacks run so far.
func (s *Stepper) Frames() int { return s.frames }

// Requests is the number of RequestFrame calls so far.
func (s *Stepper) Requests() int { return s.requests }
