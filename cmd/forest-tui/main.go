package main

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"canopy/internal/core"
	"canopy/internal/forest"

	"github.com/atotto/clipboard"
	"github.com/integrii/flaggy"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(*gocui.View) error
	viewName string
}

type consoleUI struct {
	mu    sync.Mutex
	world *forest.World
	gui   *gocui.Gui
	keys  []keyBinding

	timer  *core.FixedStep
	seed   int64
	paused bool
	step   bool
	done   chan struct{}
}

func main() {
	seed := int64(1337)
	tps := 30
	pairs := 10

	flaggy.SetName("forest-tui")
	flaggy.SetDescription("terminal front-end for the canopy forest simulation")
	flaggy.Int64(&seed, "s", "seed", "world seed")
	flaggy.Int(&tps, "t", "tps", "simulation ticks per second")
	flaggy.Int(&pairs, "p", "pairs", "initial tree pairs per band row")
	flaggy.Parse()

	cfg := forest.DefaultConfig()
	cfg.Seed = seed
	cfg.Params.InitialTreePairs = pairs

	world := forest.NewWithConfig(cfg)
	world.Reset(seed)

	ui := newConsoleUI(world, seed, tps)
	ui.run()
}

func newConsoleUI(world *forest.World, seed int64, tps int) *consoleUI {
	t := &consoleUI{
		world: world,
		timer: core.NewFixedStep(tps),
		seed:  seed,
		done:  make(chan struct{}),
	}

	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.gui = gui

	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/resume", t.cmdPause, ""},
		{'n', "N", "Single tick", t.cmdStep, ""},
		{'r', "R", "Reset", t.cmdReset, ""},
		{'w', "W", "Reseed", t.cmdReseed, ""},
		{'c', "C", "Copy report", t.cmdCopyReport, ""},
	}
	gui.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := gui.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			log.Panicln(err)
		}
	}
	return t
}

func (t *consoleUI) run() {
	go t.loop()
	if err := t.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.done)
	t.gui.Close()
}

func (t *consoleUI) loop() {
	for {
		select {
		case <-t.done:
			return
		default:
		}
		if !t.timer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		t.mu.Lock()
		if !t.paused || t.step {
			t.world.Update(core.Input{DT: t.timer.DT()})
			t.step = false
		}
		t.mu.Unlock()
		t.refresh()
	}
}

func (t *consoleUI) refresh() {
	t.renderField()
	t.renderStatus()
}

var stageGlyphs = [...]rune{'.', ',', 't', 'T', 'T', 'y', '!', '_'}

func treeGlyph(mark core.TreeMark) string {
	glyph := string(stageGlyphs[int(mark.Stage)%len(stageGlyphs)])
	if !mark.Alive {
		return aurora.Gray(12, glyph).String()
	}
	switch forest.Species(mark.Species) {
	case forest.SpeciesAsh:
		return aurora.Green(glyph).String()
	case forest.SpeciesFir:
		return aurora.Cyan(glyph).String()
	default:
		return aurora.Yellow(glyph).String()
	}
}

func (t *consoleUI) renderField() {
	t.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View("forest")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		cover := append([]forest.Cover(nil), t.world.CoverGrid()...)
		marks := append([]core.TreeMark(nil), t.world.TreeMarks()...)
		t.mu.Unlock()

		// Tallest living stage wins the tile's glyph.
		glyphs := map[int]core.TreeMark{}
		for _, m := range marks {
			tile := forest.TileIndex(int(m.X), int(m.Y))
			if prev, ok := glyphs[tile]; !ok || m.Stage > prev.Stage {
				glyphs[tile] = m
			}
		}

		maxW, maxH := v.Size()
		var b bytes.Buffer
		for y := 0; y < forest.GridDim && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			for x := 0; x < forest.GridDim && x < maxW; x++ {
				tile := forest.TileIndex(x, y)
				if m, ok := glyphs[tile]; ok {
					b.WriteString(treeGlyph(m))
					continue
				}
				if cover[tile] == forest.CoverGrass {
					b.WriteString(aurora.Green("░").String())
				} else {
					b.WriteString(aurora.Yellow("░").String())
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *consoleUI) renderStatus() {
	t.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		tick := t.world.Tick()
		total := t.world.TreeCount()
		census := t.world.Census()
		dropped := t.world.DroppedEvents()
		paused := t.paused
		t.mu.Unlock()

		mode := aurora.Cyan("running").String()
		if paused {
			mode = aurora.Blue("paused").String()
		}
		fmt.Fprintln(v, prop("Seed", strconv.FormatInt(t.seed, 10)))
		fmt.Fprintln(v, prop("Tick", strconv.FormatUint(tick, 10)))
		fmt.Fprintln(v, prop("Trees", strconv.Itoa(total)))
		fmt.Fprintln(v, prop("Mature", strconv.Itoa(census[forest.StageMature])))
		fmt.Fprintln(v, prop("Snags", strconv.Itoa(census[forest.StageSnag]+census[forest.StageStump])))
		fmt.Fprintln(v, prop("Dropped", strconv.FormatUint(dropped, 10)))
		fmt.Fprintln(v, prop("Mode", mode))
		return nil
	})
}

func prop(name, value string) string {
	return " " + aurora.Colorize(name, aurora.GreenFg).String() + ": " + value
}

func (t *consoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("forest", leftColumnWidth+1, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Forest"
		v.Frame = true
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, kb := range t.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(kb.name).String())
			b.WriteString(": ")
			b.WriteString(kb.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *consoleUI) cmdQuit(*gocui.View) error {
	return gocui.ErrQuit
}

func (t *consoleUI) cmdPause(*gocui.View) error {
	t.mu.Lock()
	t.paused = !t.paused
	t.mu.Unlock()
	t.renderStatus()
	return nil
}

func (t *consoleUI) cmdStep(*gocui.View) error {
	t.mu.Lock()
	t.step = true
	t.mu.Unlock()
	return nil
}

func (t *consoleUI) cmdReset(*gocui.View) error {
	t.mu.Lock()
	t.world.Reset(t.seed)
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *consoleUI) cmdReseed(*gocui.View) error {
	t.mu.Lock()
	t.seed = time.Now().UnixNano()
	t.world.Reset(t.seed)
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *consoleUI) cmdCopyReport(*gocui.View) error {
	t.mu.Lock()
	report := t.world.BuildReport()
	t.mu.Unlock()
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("forest-tui: clipboard write failed: %v", err)
	}
	return nil
}
