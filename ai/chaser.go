package ai

import "github.com/milk9111/bunker/common"

// Chaser follows the player once it is within DetectionRange and stops
// inside AttackRange. Firing attacks is handled elsewhere.
type Chaser struct {
	DetectionRange float64
	AttackRange    float64
	Speed          float64

	Chasing       bool
	InAttackRange bool
}

func NewChaser(detection, attack, speed float64) *Chaser {
	return &Chaser{DetectionRange: detection, AttackRange: attack, Speed: speed}
}

func (c *Chaser) Kind() Kind { return KindChaser }

func (c *Chaser) Tick(_ float64, self common.Vec2, player *common.Vec2) Command {
	if c == nil || player == nil {
		return Command{}
	}

	d := common.Distance(self, *player)
	if d > c.DetectionRange {
		c.Chasing = false
		c.InAttackRange = false
		return Command{}
	}

	c.Chasing = true
	dir := common.Sign(player.X - self.X)
	if d > c.AttackRange {
		c.InAttackRange = false
		return Command{VX: dir * c.Speed, Facing: int(dir), Running: true}
	}
	c.InAttackRange = true
	return Command{Facing: int(dir)}
}
