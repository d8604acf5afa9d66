package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// EntityBuildSpec is one prefab: a name and the raw settings of each
// component it carries.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one raw component map into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Mass      float64 `yaml:"mass"`
	Friction  float64 `yaml:"friction"`
	Static    bool    `yaml:"static"`
	Kinematic bool    `yaml:"kinematic"`
	Category  string  `yaml:"category"`
}

type PlayerComponentSpec struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	MeleeCooldown      float64 `yaml:"melee_cooldown"`
	MeleeRange         float64 `yaml:"melee_range"`
	MeleeDamage        int     `yaml:"melee_damage"`
	ShootCooldown      float64 `yaml:"shoot_cooldown"`
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	ProjectileDamage   int     `yaml:"projectile_damage"`
	WindUp             float64 `yaml:"wind_up"`
	KnockbackX         float64 `yaml:"knockback_x"`
	KnockbackY         float64 `yaml:"knockback_y"`
	RestartDelay       float64 `yaml:"restart_delay"`
}

type HealthComponentSpec struct {
	Max        int     `yaml:"max"`
	DeathDelay float64 `yaml:"death_delay"`
}

type EnemyComponentSpec struct {
	Behavior        string  `yaml:"behavior"`
	Speed           float64 `yaml:"speed"`
	Wait            float64 `yaml:"wait"`
	PatrolDistance  float64 `yaml:"patrol_distance"`
	DetectionRange  float64 `yaml:"detection_range"`
	AttackRange     float64 `yaml:"attack_range"`
	AttackCooldown  float64 `yaml:"attack_cooldown"`
	AttackDamage    int     `yaml:"attack_damage"`
	ContactDamage   int     `yaml:"contact_damage"`
	ContactCooldown float64 `yaml:"contact_cooldown"`
}

type AppearanceComponentSpec struct {
	Color  YAMLColor `yaml:"color"`
	Glyph  string    `yaml:"glyph"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Layer  int       `yaml:"layer"`
	Label  string    `yaml:"label"`
}

type AnimationComponentSpec struct {
	Initial string `yaml:"initial"`
}

type CameraComponentSpec struct {
	Mode                 string  `yaml:"mode"`
	Size                 float64 `yaml:"size"`
	SmoothTime           float64 `yaml:"smooth_time"`
	OffsetX              float64 `yaml:"offset_x"`
	OffsetY              float64 `yaml:"offset_y"`
	LookAhead            *bool   `yaml:"look_ahead"`
	LookAheadDistance    float64 `yaml:"look_ahead_distance"`
	ForwardDuration      float64 `yaml:"forward_duration"`
	BackwardDuration     float64 `yaml:"backward_duration"`
	ForwardEase          string  `yaml:"forward_ease"`
	BackwardEase         string  `yaml:"backward_ease"`
	FollowAfterWaypoints *bool   `yaml:"follow_after_waypoints"`
	LoopWaypoints        bool    `yaml:"loop_waypoints"`
}

type ClipSpec struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
}

type IdleAnimationComponentSpec struct {
	Clips     []ClipSpec `yaml:"clips"`
	ExtraWait float64    `yaml:"extra_wait"`
}

type EmergencyLightsComponentSpec struct {
	Lights      int     `yaml:"lights"`
	FlashSpeed  float64 `yaml:"flash_speed"`
	Alternating bool    `yaml:"alternating"`
	StartOnLoad bool    `yaml:"start_on_load"`
}

type DoorComponentSpec struct {
	OpenDuration  float64 `yaml:"open_duration"`
	OpenOffsetX   float64 `yaml:"open_offset_x"`
	OpenOffsetY   float64 `yaml:"open_offset_y"`
	Ease          string  `yaml:"ease"`
	TriggerWidth  float64 `yaml:"trigger_width"`
	TriggerHeight float64 `yaml:"trigger_height"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

func ParseColor(v string) (color.RGBA, error) {
	if named, ok := colornames.Map[strings.ToLower(v)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		n, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		rgba[i] = n
	}
	return color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
