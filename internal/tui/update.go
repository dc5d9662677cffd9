package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"globemap/internal/mapdraw"
)

const (
	rotateStep = 10.0
	tiltStep   = 5.0
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.cache.Invalidate()
		// the 2D map on screen is the next display, compose it now
		if !m.is3D {
			if err := m.render(); err != nil {
				m.log.Warn("re-render after resize failed", zap.Error(err))
			}
		}
	case datasetMsg:
		return m.handleDataset(msg)
	case prerenderMsg:
		if m.width == 0 {
			// no size yet; the first 2D display composes instead
			return m, nil
		}
		if err := m.render(); err != nil {
			m.log.Warn("pre-render failed", zap.Error(err))
			return m, nil
		}
		m.status = "map ready"
	case show2DMsg:
		return m.finishShow2D()
	case spinMsg:
		if msg.gen != m.spinGen || !m.spin {
			return m, nil
		}
		if m.is3D && !m.busy {
			m.orient = m.orient.Rotate(m.cfg.Globe.SpinStep)
		}
		return m, m.spinTick()
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onButton(msg.X, msg.Y) {
			return m.toggle()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.toggle()
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		case key.Matches(msg, m.keys.Spin):
			m.spin = !m.spin
			m.spinGen++
			m.status = fmt.Sprintf("spin: %v", m.spin)
			if m.spin {
				return m, m.spinTick()
			}
		case key.Matches(msg, m.keys.Left):
			m.orient = m.orient.Rotate(-rotateStep)
		case key.Matches(msg, m.keys.Right):
			m.orient = m.orient.Rotate(rotateStep)
		case key.Matches(msg, m.keys.Up):
			m.orient = m.orient.Tilt(tiltStep)
		case key.Matches(msg, m.keys.Down):
			m.orient = m.orient.Tilt(-tiltStep)
		}
	}
	return m, nil
}

func (m Model) handleDataset(msg datasetMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("dataset load failed",
			zap.String("dataset", string(msg.kind)),
			zap.String("src", msg.src),
			zap.Error(msg.err))
		m.status = fmt.Sprintf("%s: %v", msg.kind, msg.err)
		return m, nil
	}
	switch msg.kind {
	case landDataset:
		m.land = msg.fc
		m.cache.SetLand(msg.fc)
	case bordersDataset:
		m.borders = msg.fc
		m.cache.SetBorders(msg.fc)
	}
	m.log.Info("dataset loaded",
		zap.String("dataset", string(msg.kind)),
		zap.String("src", msg.src),
		zap.Int("features", len(msg.fc.Features)))
	m.status = fmt.Sprintf("loaded %s: %d features", msg.kind, len(msg.fc.Features))
	// whichever load lands last schedules the pre-render
	if m.cache.Ready() {
		return m, m.after(prerenderMsg{})
	}
	return m, nil
}

// toggle is the button action. It is a no-op while the button is disabled.
func (m Model) toggle() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if !m.is3D {
		m.is3D = true
		m.status = "globe"
		return m, nil
	}
	if m.cache.Rendered() {
		m.is3D = false
		m.retry = false
		m.status = "map"
		return m, nil
	}
	m.busy = true
	m.status = "rendering map"
	return m, tea.Batch(m.after(show2DMsg{}), m.spinner.Tick)
}

// finishShow2D renders if needed and then shows the map. Any failure puts
// the button into its try again state and keeps the globe up.
func (m Model) finishShow2D() (tea.Model, tea.Cmd) {
	m.busy = false
	if err := m.render(); err != nil {
		m.log.Error("toggle to 2D failed", zap.Error(err))
		m.retry = true
		if errors.Is(err, mapdraw.ErrNotReady) {
			m.status = "datasets still loading"
		} else {
			m.status = "could not render map"
		}
		return m, nil
	}
	m.retry = false
	m.is3D = false
	m.status = "map"
	return m, nil
}

// render composes the map for the current size. The cache turns it into a
// no-op when nothing changed.
func (m Model) render() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while composing map: %v", r)
		}
	}()
	w, h := m.mapSize()
	_, err = m.cache.Render(w, h)
	return err
}

// onButton reports whether screen cell (x, y) hits the toggle button.
func (m Model) onButton(x, y int) bool {
	if y != 0 {
		return false
	}
	bw := lipgloss.Width(m.renderButton())
	return x >= m.width-bw && x < m.width
}
