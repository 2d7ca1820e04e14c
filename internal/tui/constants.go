package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMargin       = 6  // Standard horizontal margin (m.width - 6)
	ModalWidthMarginNarrow = 10 // Narrow horizontal margin for focused modals (m.width - 10)
	ModalHeightMarginMed   = 4  // Medium vertical margin (m.height - 4)
	ModalMinWidth          = 40 // Smallest width a modal shrinks to

	// Viewport Padding and Borders
	ViewportBorderWidth       = 2 // Width consumed by borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)
	ViewportPaddingVertical   = 2 // Vertical padding (top + bottom)

	// Content Area Offsets
	MainViewHeightOffset = 5 // m.height - 5 for form rows (title + borders + status + hints)
	StatusBarLines       = 2 // Status line and key hints
	ModalOverheadLines   = 8 // Title (2) + padding (2) + border (2) + footer (2)

	// Form layout
	IndentWidth     = 2  // Spaces per nesting level
	MinLabelWidth   = 12 // Labels are padded to at least this width
	MaxLabelWidth   = 32 // Longer labels are truncated
	SwatchWidth     = 4  // Width of the inline color swatch
	PreviewMinWidth = 80 // Below this width the preview replaces the form

	// Split View Ratios
	FormWidthRatio = 0.55 // Share of the width given to the form when the preview is shown
)
