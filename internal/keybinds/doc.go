/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package implements a context-aware keyboard binding system.
Every key the editor reacts to goes through a Registry, so all of them can
be changed from a keybinds.json file in the configuration directory.

# Key Concepts

Contexts:
  - global: bindings available everywhere (ctrl+c)
  - editor: the document form
  - text_input: the inline field editor and the open prompt
  - color: the color picker
  - search, query: their input lines
  - confirm: the unsaved-changes prompt
  - help, viewer: scrollable overlays and panes

A key bound in a specific context shadows the same key in global.

Actions are string constants (ActionSave, ActionActivate, ...). The same
action can be bound to different keys in different contexts.

# Components

Registry (registry.go):
  - Storage for bindings, context then global lookup
  - Multi-key sequence support ("gg" for go-to-top)

Validator (validator.go):
  - Keys listed under two actions of one context (errors)
  - Unknown actions and malformed keys (errors)
  - Shadowing, reserved-key rebinding, unsupported sequences (warnings)

Defaults (defaults.go):
  - Default binding for every action

# Configuration File Format

Each section maps an action to a comma separated key list. A configured
action replaces all of its default keys in that section; "space" names the
space bar.

	{
	  "version": "1.0",
	  "editor": {
	    "save": "ctrl+s,w",
	    "activate": "enter,space"
	  },
	  "color": {
	    "color_increase": "right,+"
	  }
	}

# Example Usage

	registry, err := keybinds.LoadOrDefault(path)
	if err != nil {
		// fall back to defaults and report
		registry = keybinds.NewDefaultRegistry()
	}

	action, complete, partial := registry.MatchMultiKey(keybinds.ContextEditor, msg.String())

The Registry is not safe for concurrent use; the UI owns it on the event
loop goroutine.
*/
package keybinds
