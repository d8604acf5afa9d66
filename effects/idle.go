package effects

// Clip is one looping animation the idle cycler can play.
type Clip struct {
	Name     string
	Duration float64
}

// DefaultIdleClips is the assistant's idle rotation.
var DefaultIdleClips = []Clip{
	{Name: "Idle", Duration: 2},
	{Name: "Dancing", Duration: 3},
	{Name: "Greet", Duration: 1.5},
}

// IdleCycler rotates through clips, holding each for its duration plus
// ExtraWait.
type IdleCycler struct {
	Clips     []Clip
	ExtraWait float64
	index     int
}

func NewIdleCycler(clips []Clip, extraWait float64) *IdleCycler {
	if len(clips) == 0 {
		clips = DefaultIdleClips
	}
	return &IdleCycler{Clips: clips, ExtraWait: extraWait}
}

func (c *IdleCycler) Index() int { return c.index }

func (c *IdleCycler) Current() Clip {
	return c.Clips[c.index]
}

// Hold is how long the current clip stays before the next one.
func (c *IdleCycler) Hold() float64 {
	return c.Current().Duration + c.ExtraWait
}

func (c *IdleCycler) Next() Clip {
	c.index = (c.index + 1) % len(c.Clips)
	return c.Current()
}

// Set jumps to clip i. Out of range indexes are ignored.
func (c *IdleCycler) Set(i int) bool {
	if i < 0 || i >= len(c.Clips) {
		return false
	}
	c.index = i
	return true
}
