package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"globemap/internal/canvas"
	"globemap/internal/config"
	"globemap/internal/geom"
	"globemap/internal/globe"
	"globemap/internal/mapdraw"
	"globemap/internal/proj"
)

const (
	headerHeight = 1
	footerHeight = 2
	loadTimeout  = 30 * time.Second
)

type datasetKind string

const (
	landDataset    datasetKind = "land"
	bordersDataset datasetKind = "borders"
)

// datasetMsg carries the result of one dataset load.
type datasetMsg struct {
	kind datasetKind
	src  string
	fc   *geom.FeatureCollection
	err  error
}

// prerenderMsg fires once both datasets are in and the delay has passed.
type prerenderMsg struct{}

// show2DMsg fires after a toggle found no cached map: render, then display.
type show2DMsg struct{}

type spinMsg struct{ gen int }

type Model struct {
	cfg *config.Config
	log *zap.Logger

	width  int
	height int

	// display state; only toggle2D/toggle3D flip is3D
	is3D  bool
	busy  bool // toggle button disabled
	retry bool // last toggle failed, button offers to try again

	status string

	cache   *mapdraw.Cache[*canvas.Braille]
	land    *geom.FeatureCollection
	borders *geom.FeatureCollection

	orient     proj.Ortho // only the center is used
	spin       bool
	spinGen    int
	globeStyle globe.Style

	spinner     spinner.Model
	help        help.Model
	keys        keyMap
	helpVisible bool
}

func New(cfg *config.Config, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		cfg:         cfg,
		log:         log,
		is3D:        true,
		status:      "loading datasets",
		cache:       mapdraw.NewCache(canvas.NewBraille, MapStyle(cfg), log),
		orient:      proj.Ortho{Lon0: cfg.Globe.StartLon, Lat0: cfg.Globe.StartLat},
		spin:        cfg.Globe.Spin,
		globeStyle:  globeStyle(cfg),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:        help.New(),
		keys:        defaultKeys(),
		helpVisible: true,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadCmd(landDataset, m.cfg.Data.Land),
		loadCmd(bordersDataset, m.cfg.Data.Borders),
	}
	if m.spin {
		cmds = append(cmds, m.spinTick())
	}
	return tea.Batch(cmds...)
}

// loadCmd fetches one dataset. Both loads run independently and report in
// whatever order they finish.
func loadCmd(kind datasetKind, src string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		fc, err := geom.Load(ctx, src)
		return datasetMsg{kind: kind, src: src, fc: fc, err: err}
	}
}

func (m Model) spinTick() tea.Cmd {
	gen := m.spinGen
	return tea.Tick(m.cfg.Globe.SpinInterval, func(time.Time) tea.Msg { return spinMsg{gen: gen} })
}

func (m Model) after(msg tea.Msg) tea.Cmd {
	return tea.Tick(m.cfg.Render.PrerenderDelay, func(time.Time) tea.Msg { return msg })
}

// mapSize is the map area in terminal cells.
func (m Model) mapSize() (int, int) {
	return max(m.width, 1), max(m.height-headerHeight-footerHeight, 1)
}

// Is3D reports whether the globe is on screen.
func (m Model) Is3D() bool { return m.is3D }
