package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Input is the per-tick input snapshot a host loop feeds into a simulation.
// DT is elapsed simulated time in seconds; the remaining fields are raw
// control flags the simulation interprets itself (camera, pause, debug
// layers).
type Input struct {
	DT float64

	Up    bool
	Down  bool
	Left  bool
	Right bool

	ZoomIn  bool
	ZoomOut bool

	Pause bool

	ShowGrid  bool
	ShowDual  bool
	ShowTrees bool
}

// TreeMark is a renderable snapshot of a single tree: continuous tile-space
// coordinates plus the enum tags a front end needs to pick a glyph or colour.
type TreeMark struct {
	X, Y    float64
	Species uint8
	Stage   uint8
	Alive   bool
}

// Sim defines the contract a tile simulation must implement to be hosted by
// the GUI shell or the terminal runners.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Update(in Input)
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
