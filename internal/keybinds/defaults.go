package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	// Register all default keybindings
	registerGlobalBindings(r)
	registerEditorBindings(r)
	registerTextInputBindings(r)
	registerColorBindings(r)
	registerSearchBindings(r)
	registerQueryBindings(r)
	registerConfirmBindings(r)
	registerHelpBindings(r)
	registerViewerBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNavigation sets up the list navigation shared by scrollable contexts
func registerNavigation(r *Registry, context Context) {
	r.RegisterMultiple(context, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(context, []string{"down", "j"}, ActionNavigateDown)
	r.Register(context, "pgup", ActionPageUp)
	r.Register(context, "pgdown", ActionPageDown)
	r.Register(context, "ctrl+u", ActionHalfPageUp)
	r.Register(context, "ctrl+d", ActionHalfPageDown)
	r.Register(context, "g", ActionGoToTopPrepare)
	r.Register(context, "gg", ActionGoToTop)
	r.Register(context, "G", ActionGoToBottom)
	r.Register(context, "home", ActionGoToTop)
	r.Register(context, "end", ActionGoToBottom)
}

// registerEditorBindings sets up keybindings for the document form
func registerEditorBindings(r *Registry) {
	r.Register(ContextEditor, "q", ActionQuit)
	registerNavigation(r, ContextEditor)

	// Form
	r.RegisterMultiple(ContextEditor, []string{"enter", " "}, ActionActivate)
	r.RegisterMultiple(ContextEditor, []string{"right", "l"}, ActionExpand)
	r.RegisterMultiple(ContextEditor, []string{"left", "h"}, ActionCollapse)

	// Document
	r.RegisterMultiple(ContextEditor, []string{"ctrl+s", "s"}, ActionSave)
	r.RegisterMultiple(ContextEditor, []string{"ctrl+r", "r"}, ActionReload)
	r.Register(ContextEditor, "x", ActionCloseDocument)
	r.Register(ContextEditor, "o", ActionOpenFile)

	// Clipboard
	r.Register(ContextEditor, "y", ActionCopyValue)
	r.RegisterMultiple(ContextEditor, []string{"p", "ctrl+v"}, ActionPasteValue)

	// View
	r.Register(ContextEditor, "P", ActionTogglePreview)
	r.Register(ContextEditor, "tab", ActionSwitchFocus)

	// Search and query
	r.Register(ContextEditor, "/", ActionOpenSearch)
	r.Register(ContextEditor, "n", ActionSearchNext)
	r.Register(ContextEditor, "N", ActionSearchPrevious)
	r.Register(ContextEditor, "esc", ActionSearchClear)
	r.Register(ContextEditor, ":", ActionOpenQuery)

	r.Register(ContextEditor, "?", ActionOpenHelp)
}

// registerTextInputBindings sets up common text input bindings. Cursor
// movement and deletion are handled by the text input itself.
func registerTextInputBindings(r *Registry) {
	r.Register(ContextTextInput, "enter", ActionTextSubmit)
	r.Register(ContextTextInput, "esc", ActionTextCancel)
	r.RegisterMultiple(ContextTextInput, []string{"ctrl+v", "shift+insert", "super+v"}, ActionTextPaste)
}

// registerColorBindings sets up keybindings for the color picker
func registerColorBindings(r *Registry) {
	r.RegisterMultiple(ContextColor, []string{"esc", "q"}, ActionCloseModal)
	r.Register(ContextColor, "enter", ActionColorCommit)
	r.RegisterMultiple(ContextColor, []string{"down", "j", "tab"}, ActionColorNextChannel)
	r.RegisterMultiple(ContextColor, []string{"up", "k", "shift+tab"}, ActionColorPrevChannel)
	r.RegisterMultiple(ContextColor, []string{"right", "l", "+"}, ActionColorIncrease)
	r.RegisterMultiple(ContextColor, []string{"left", "h", "-"}, ActionColorDecrease)
	r.RegisterMultiple(ContextColor, []string{"shift+right", "L"}, ActionColorIncreaseCoarse)
	r.RegisterMultiple(ContextColor, []string{"shift+left", "H"}, ActionColorDecreaseCoarse)
	r.Register(ContextColor, "#", ActionColorEditHex)
	r.Register(ContextColor, "r", ActionColorReset)
	r.Register(ContextColor, "y", ActionCopyValue)
}

// registerSearchBindings sets up keybindings for search mode
func registerSearchBindings(r *Registry) {
	r.RegisterMultiple(ContextSearch, []string{"ctrl+v", "shift+insert", "super+v"}, ActionTextPaste)
	r.Register(ContextSearch, "enter", ActionTextSubmit)
	r.Register(ContextSearch, "esc", ActionTextCancel)
	r.Register(ContextSearch, "ctrl+n", ActionSearchNext)
	r.Register(ContextSearch, "ctrl+p", ActionSearchPrevious)
}

// registerQueryBindings sets up keybindings for query mode
func registerQueryBindings(r *Registry) {
	r.RegisterMultiple(ContextQuery, []string{"ctrl+v", "shift+insert", "super+v"}, ActionTextPaste)
	r.Register(ContextQuery, "enter", ActionTextSubmit)
	r.Register(ContextQuery, "esc", ActionTextCancel)
}

// registerConfirmBindings sets up confirmation dialog bindings
func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
	r.RegisterMultiple(ContextConfirm, []string{"s", "S"}, ActionSaveAndQuit)
}

// registerHelpBindings sets up keybindings for help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	registerNavigation(r, ContextHelp)
}

// registerViewerBindings sets up generic viewer bindings (preview, query result)
func registerViewerBindings(r *Registry) {
	r.RegisterMultiple(ContextViewer, []string{"esc", "q"}, ActionCloseModal)
	r.Register(ContextViewer, "tab", ActionSwitchFocus)
	r.Register(ContextViewer, "P", ActionTogglePreview)
	registerNavigation(r, ContextViewer)
}
