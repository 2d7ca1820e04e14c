package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// SplitPaneConfig defines the configuration for the form and preview layout
type SplitPaneConfig struct {
	// Total dimensions
	Width  int
	Height int

	// Split view control
	IsSplitView bool // If false, shows only left pane at full width

	// Left pane
	LeftTitle     string
	LeftContent   string
	LeftIsFocused bool

	// Right pane (only used if IsSplitView is true)
	RightTitle     string
	RightContent   string
	RightIsFocused bool

	// Width ratio for split view (0.0 to 1.0, default 0.5 for equal split)
	// Left pane gets this ratio, right pane gets the remainder
	LeftWidthRatio float64
}

// splitWidths returns the outer widths of the left and right panes
func (cfg SplitPaneConfig) splitWidths() (int, int) {
	if !cfg.IsSplitView {
		return cfg.Width, 0
	}
	ratio := cfg.LeftWidthRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5 // Default to equal split
	}
	left := int(float64(cfg.Width) * ratio)
	return left, cfg.Width - left
}

// renderSplitPanes renders one or two bordered panes side by side
func renderSplitPanes(cfg SplitPaneConfig) string {
	leftWidth, rightWidth := cfg.splitWidths()
	paneHeight := cfg.Height - ViewportBorderWidth

	left := renderPane(cfg.LeftTitle, cfg.LeftContent, cfg.LeftIsFocused, leftWidth, paneHeight)
	if !cfg.IsSplitView {
		return left
	}

	right := renderPane(cfg.RightTitle, cfg.RightContent, cfg.RightIsFocused, rightWidth, paneHeight)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderPane renders a bordered pane highlighted when focused
func renderPane(title, content string, focused bool, width, height int) string {
	titleStyle := styleTitleUnfocused
	borderColor := colorGray
	if focused {
		titleStyle = styleTitleFocused
		borderColor = colorGreen
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width - ViewportBorderWidth).
		Height(height).
		MaxHeight(height + ViewportBorderWidth).
		Render(titleStyle.Render(title) + "\n" + content)
}

// renderModal renders a centered modal with a title, body and footer
func renderModal(title, body, footer string, totalWidth, totalHeight int) string {
	width := totalWidth - ModalWidthMarginNarrow
	if width < ModalMinWidth {
		width = ModalMinWidth
	}

	content := styleTitle.Render(title) + "\n\n" + body
	if footer != "" {
		content += "\n\n" + styleSubtle.Render(footer)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(
		totalWidth,
		totalHeight,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}
