package carve

// Action names what a tool does to a workpiece.
type Action string

const (
	ActionNone     Action = ""
	ActionCarve    Action = "carve"
	ActionPaint    Action = "paint"
	ActionAssemble Action = "assemble"
)

type ToolKind uint8

const (
	Chisel ToolKind = iota
	Brush
	Mallet
)

func (k ToolKind) String() string {
	switch k {
	case Chisel:
		return "chisel"
	case Brush:
		return "brush"
	case Mallet:
		return "mallet"
	}
	return "unknown"
}

func (k ToolKind) Action() Action {
	switch k {
	case Chisel:
		return ActionCarve
	case Brush:
		return ActionPaint
	case Mallet:
		return ActionAssemble
	}
	return ActionNone
}

var maxDurability = map[ToolKind]int{
	Chisel: 200,
	Brush:  400,
	Mallet: 150,
}

// Tool is a hand tool with wear. A tool at zero durability is broken.
type Tool struct {
	Kind          ToolKind
	Durability    int
	MaxDurability int
}

func NewTool(kind ToolKind) *Tool {
	d := maxDurability[kind]
	return &Tool{Kind: kind, Durability: d, MaxDurability: d}
}

func (t *Tool) Broken() bool { return t.Durability <= 0 }

// Use consumes one unit of durability. It reports false for a broken tool.
func (t *Tool) Use() bool {
	if t.Broken() {
		return false
	}
	t.Durability--
	return true
}

// Condition is the remaining durability in [0, 1].
func (t *Tool) Condition() float32 {
	if t.MaxDurability <= 0 {
		return 0
	}
	return float32(t.Durability) / float32(t.MaxDurability)
}

// CompatibleWith reports whether the tool can work the given material.
func (t *Tool) CompatibleWith(mt MaterialType) bool {
	switch t.Kind {
	case Chisel, Brush:
		return true
	case Mallet:
		return mt == Wood
	}
	return false
}
