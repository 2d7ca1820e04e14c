package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/cfgedit/internal/color"
	"github.com/studiowebux/cfgedit/internal/keybinds"
)

const (
	// ColorFineStep is one byte level
	ColorFineStep = 1.0 / 255
	// ColorCoarseStep is sixteen byte levels
	ColorCoarseStep = 16.0 / 255

	colorBarWidth = 24
)

var channelNames = [4]string{"R", "G", "B", "A"}

// colorPicker holds the color being adjusted in the picker modal
type colorPicker struct {
	row      row
	original [4]float64
	rgba     [4]float64
	channels int
	channel  int
}

func newColorPicker(r row) *colorPicker {
	channels := r.channels
	if channels != 4 {
		channels = 3
	}
	return &colorPicker{
		row:      r,
		original: r.rgba,
		rgba:     r.rgba,
		channels: channels,
	}
}

// selectChannel moves the selected channel by delta, wrapping around
func (p *colorPicker) selectChannel(delta int) {
	p.channel = (p.channel + delta + p.channels) % p.channels
}

// adjust changes the selected channel, clamped to [0,1]
func (p *colorPicker) adjust(delta float64) {
	c := p.rgba[p.channel] + delta
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	p.rgba[p.channel] = c
}

// setHex replaces the color from hex text. Alpha is kept unless the text
// carries one, and text naming the current color changes nothing.
func (p *colorPicker) setHex(text string) error {
	rgba, channels, err := color.ParseHex(text)
	if err != nil {
		return err
	}
	if channels < 4 {
		rgba[3] = p.rgba[3]
	}
	if color.Hex(rgba, p.channels) != p.hex() {
		p.rgba = rgba
	}
	return nil
}

func (p *colorPicker) reset() {
	p.rgba = p.original
}

func (p *colorPicker) hex() string {
	return color.Hex(p.rgba, p.channels)
}

// openPicker opens the color modal on a color row
func (m *Model) openPicker(r row) {
	m.picker = newColorPicker(r)
	m.mode = ModeColor
}

// handleColorKeys handles keyboard input in the color picker
func (m *Model) handleColorKeys(msg tea.KeyMsg) tea.Cmd {
	p := m.picker
	if p == nil {
		m.mode = ModeNormal
		return nil
	}

	action, ok := m.keybinds.Match(keybinds.ContextColor, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.picker = nil
		m.mode = ModeNormal

	case keybinds.ActionColorCommit:
		m.commit(p.row.id, p.rgba)
		m.picker = nil
		m.mode = ModeNormal
		return m.setStatus(fmt.Sprintf("Updated %s to %s", p.row.label, p.hex()))

	case keybinds.ActionColorNextChannel:
		p.selectChannel(1)
	case keybinds.ActionColorPrevChannel:
		p.selectChannel(-1)
	case keybinds.ActionColorIncrease:
		p.adjust(ColorFineStep)
	case keybinds.ActionColorDecrease:
		p.adjust(-ColorFineStep)
	case keybinds.ActionColorIncreaseCoarse:
		p.adjust(ColorCoarseStep)
	case keybinds.ActionColorDecreaseCoarse:
		p.adjust(-ColorCoarseStep)
	case keybinds.ActionColorReset:
		p.reset()

	case keybinds.ActionColorEditHex:
		m.input = newInput("#", strings.TrimPrefix(p.hex(), "#"), 12)
		m.mode = ModeColorHex
		return m.input.Focus()

	case keybinds.ActionCopyValue:
		if err := clipboard.WriteAll(p.hex()); err != nil {
			return m.setError(fmt.Errorf("failed to copy: %w", err))
		}
		return m.setStatus("Copied " + p.hex())
	}

	return nil
}

// handleColorHexKeys handles the hex entry inside the color picker
func (m *Model) handleColorHexKeys(msg tea.KeyMsg) tea.Cmd {
	if !msg.Paste {
		if action, ok := m.keybinds.Match(keybinds.ContextTextInput, msg.String()); ok {
			switch action {
			case keybinds.ActionTextCancel:
				m.mode = ModeColor
				return nil
			case keybinds.ActionTextSubmit:
				if err := m.picker.setHex(m.input.Value()); err != nil {
					return m.setError(inputError(m.picker.row, "a hex color", m.input.Value(), err))
				}
				m.mode = ModeColor
				return nil
			case keybinds.ActionTextPaste:
				return m.pasteIntoInput()
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// swatch renders a block filled with the color
func swatch(rgba [4]float64, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color.Hex(rgba, 3))).
		Render(strings.Repeat(" ", width))
}

// channelBar renders one channel as a bar with its byte and unit values
func channelBar(name string, c float64, selected bool) string {
	filled := int(c*colorBarWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", colorBarWidth-filled)
	line := fmt.Sprintf("%s %s %3d  %.3f", name, bar, int(c*255+0.5), c)
	if selected {
		return styleSelected.Render("> " + line)
	}
	return "  " + line
}

// renderColorPicker renders the color picker modal
func (m Model) renderColorPicker() string {
	p := m.picker
	if p == nil {
		return ""
	}

	var lines []string
	lines = append(lines, swatch(p.original, 8)+" → "+swatch(p.rgba, 8)+"  "+p.hex())
	lines = append(lines, "")
	for i := 0; i < p.channels; i++ {
		lines = append(lines, channelBar(channelNames[i], p.rgba[i], i == p.channel))
	}
	if m.mode == ModeColorHex {
		lines = append(lines, "", m.input.View())
	}

	footer := m.bindingHints(keybinds.ContextColor,
		keybinds.ActionColorCommit,
		keybinds.ActionCloseModal,
		keybinds.ActionColorIncrease,
		keybinds.ActionColorIncreaseCoarse,
		keybinds.ActionColorEditHex,
		keybinds.ActionColorReset,
	)

	return renderModal(p.row.label, strings.Join(lines, "\n"), footer, m.width, m.height)
}
