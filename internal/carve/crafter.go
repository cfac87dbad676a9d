package carve

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ScorePerUnit converts world units of displacement into score points.
const ScorePerUnit = 100

// Params are the tunables of a carve stroke.
type Params struct {
	Radius     float32
	Strength   float32
	MinOpacity float32
}

// Hit is where a stroke lands on a workpiece, in world space.
type Hit struct {
	Point mgl32.Vec3
	Dir   mgl32.Vec3
}

// Outcome reports what Perform did.
type Outcome struct {
	Action Action
	Result Result
	Used   bool // durability was consumed
}

// Crafter dispatches tool actions onto workpieces.
type Crafter struct {
	Params Params
	// OnDust is called with the impact point after every carve that moved geometry.
	OnDust func(point mgl32.Vec3)

	log *zap.Logger
}

func NewCrafter(p Params, log *zap.Logger) *Crafter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Crafter{Params: p, log: log}
}

// Perform applies action to wp at hit. A nil workpiece, empty action or broken tool
// does nothing. tool may be nil, in which case no wear is applied.
func (c *Crafter) Perform(action Action, wp *Workpiece, tool *Tool, hit Hit, elapsedMs float64) Outcome {
	out := Outcome{Action: action}
	if action == ActionNone || wp == nil {
		return out
	}
	if tool != nil && tool.Broken() {
		c.log.Debug("tool is broken", zap.Stringer("tool", tool.Kind))
		return out
	}

	switch action {
	case ActionCarve:
		strength := c.Params.Strength / wp.Type.Hardness()
		out.Result = Displace(wp.Mesh, hit.Point, hit.Dir, c.Params.Radius, strength)
		if !out.Result.Changed() {
			return out
		}
		wp.Material.Feedback(c.Params.MinOpacity)
		wp.Carves++
		wp.Score += float64(out.Result.Displacement) * ScorePerUnit
		out.Used = use(tool)
		if c.OnDust != nil {
			c.OnDust(hit.Point)
		}
		c.log.Debug("carved",
			zap.String("workpiece", wp.ShortID()),
			zap.Int("moved", out.Result.Moved),
			zap.Float32("displacement", out.Result.Displacement),
		)
	case ActionPaint:
		wp.Material.Paint(elapsedMs)
		out.Used = use(tool)
	case ActionAssemble:
		c.log.Info("assembly: snapping parts", zap.String("workpiece", wp.ShortID()))
	default:
		c.log.Warn("action not yet implemented", zap.String("action", string(action)))
	}
	return out
}

func use(t *Tool) bool {
	if t == nil {
		return false
	}
	return t.Use()
}
