/*
Package tui implements the terminal user interface for cfgedit.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern, with
the document form drawn in immediate mode:
  - Update turns a message into pending outcomes: a new value keyed by the
    control identity it was entered on, or a pressed button label
  - runFrame then asks the session to render one frame into a recorder
    (frame.go) that implements projection.Widgets. Each control takes its
    pending outcome, if any, and the projection writes it into the document
  - View draws the rows recorded by the last frame

Rows are copies of what a frame displayed and never handles into the
document, so the cursor, folds and search refer to rows by identity only.

# Key Components

  - model.go: Core state, the Update loop and the frame runner
  - frame.go: The widget recorder handed to session.RenderFrame
  - keys.go: Keyboard input handling and keybind routing
  - editor.go: Inline field editor and text coercion
  - color_picker.go: Color modal for detected color arrays
  - search.go, query.go: Fuzzy row search and document queries
  - drop.go: Paths from files dropped on the terminal
  - render.go: View rendering for the form, preview and modals

# Keybind System

Keybinds are managed through the keybinds.Registry:
  - Context-aware bindings (global, editor, color, input, viewer)
  - User-customizable via keybinds.json
  - Multi-key sequences such as gg

# Threading Model

The TUI runs in Bubble Tea's event loop. Queries run as tea.Cmd functions
against a clone of the document and report back with queryResultMsg.

# Example Usage

	opts := tui.Options{
		Session: session.NewManager(logger, 4),
		Path:    "settings.json",
	}
	if err := tui.Run(opts); err != nil {
		log.Fatal(err)
	}
*/
package tui
