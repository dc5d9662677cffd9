package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"globemap/internal/canvas"
	"globemap/internal/globe"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	mapW, mapH := m.mapSize()

	// Header: title left, toggle button right
	title := titleStyle.Render(" globemap ")
	button := m.renderButton()
	gap := max(0, m.width-lipgloss.Width(title)-lipgloss.Width(button))
	header := title + strings.Repeat(" ", gap) + button

	var body string
	switch {
	case m.busy:
		body = m.placeholder(mapW, mapH)
	case m.is3D:
		body = m.renderGlobe(mapW, mapH)
	default:
		s := m.cache.Surface()
		if s == nil {
			body = m.placeholder(mapW, mapH)
		} else {
			// blit the offscreen composition
			body = strings.Join(s.Lines(), "\n")
		}
	}
	body = lipgloss.NewStyle().Width(mapW).Height(mapH).MaxHeight(mapH).Render(body)

	status := dimStyle.Render(" " + m.status + " ")
	footer := status
	if m.helpVisible {
		footer = lipgloss.JoinVertical(lipgloss.Left, status, " "+m.help.View(m.keys))
	}
	footer = lipgloss.NewStyle().Width(m.width).Height(footerHeight).MaxHeight(footerHeight).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).MaxHeight(m.height).Render(ui)
}

func (m Model) renderButton() string {
	switch {
	case m.busy:
		return busyStyle.Render("Rendering…")
	case m.retry:
		return retryStyle.Render("Try again")
	case m.is3D:
		return buttonStyle.Render("2D map")
	default:
		return buttonStyle.Render("3D globe")
	}
}

func (m Model) placeholder(w, h int) string {
	msg := m.spinner.View() + " Rendering map…"
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
}

// renderGlobe draws the globe for this frame. Braille dots are square, so
// the view needs no aspect correction.
func (m Model) renderGlobe(w, h int) string {
	b := canvas.NewBraille(w, h)
	dw, dh := b.Size()
	view := globe.View(m.orient.Lon0, m.orient.Lat0, dw, dh, 1)
	globe.Draw(b, m.land, m.borders, view, m.globeStyle)
	return strings.Join(b.Lines(), "\n")
}
