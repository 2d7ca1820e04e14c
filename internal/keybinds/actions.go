package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal    Context = "global"     // Available everywhere
	ContextEditor    Context = "editor"     // Document form
	ContextTextInput Context = "text_input" // Inline field editor and open prompt
	ContextColor     Context = "color"      // Color picker
	ContextSearch    Context = "search"     // Search input
	ContextQuery     Context = "query"      // Query input
	ContextConfirm   Context = "confirm"    // Confirmation dialogs
	ContextHelp      Context = "help"       // Help overlay
	ContextViewer    Context = "viewer"     // Scrollable read-only content (preview, query result)
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"       // Move up one row
	ActionNavigateDown   Action = "navigate_down"     // Move down one row
	ActionPageUp         Action = "page_up"           // Move up one page
	ActionPageDown       Action = "page_down"         // Move down one page
	ActionHalfPageUp     Action = "half_page_up"      // Move up half page (ctrl+u)
	ActionHalfPageDown   Action = "half_page_down"    // Move down half page (ctrl+d)
	ActionGoToTop        Action = "go_to_top"         // Go to top
	ActionGoToBottom     Action = "go_to_bottom"      // Go to bottom
	ActionGoToTopPrepare Action = "go_to_top_prepare" // First 'g' in 'gg' sequence

	// Form actions
	ActionActivate       Action = "activate"        // Toggle, edit, open picker, fold group, press button
	ActionExpand         Action = "expand"          // Expand the selected group
	ActionCollapse       Action = "collapse"        // Collapse the selected group (or its parent)
	ActionSave           Action = "save"            // Write the document
	ActionReload         Action = "reload"          // Re-read the document from disk
	ActionCloseDocument  Action = "close_document"  // Close the document
	ActionOpenFile       Action = "open_file"       // Prompt for a path to open
	ActionCopyValue      Action = "copy_value"      // Copy the selected value
	ActionPasteValue     Action = "paste_value"     // Commit clipboard text into the selected field
	ActionTogglePreview  Action = "toggle_preview"  // Show or hide the output preview
	ActionSwitchFocus    Action = "switch_focus"    // Move focus between form and preview
	ActionOpenSearch     Action = "open_search"     // Open search input
	ActionSearchNext     Action = "search_next"     // Go to next search match
	ActionSearchPrevious Action = "search_previous" // Go to previous search match
	ActionSearchClear    Action = "search_clear"    // Clear search
	ActionOpenQuery      Action = "open_query"      // Open query input
	ActionOpenHelp       Action = "open_help"       // Open help overlay

	// Text input actions
	ActionTextSubmit Action = "text_submit" // Submit text input
	ActionTextCancel Action = "text_cancel" // Cancel text input
	ActionTextPaste  Action = "text_paste"  // Paste from clipboard

	// Color picker actions
	ActionColorNextChannel    Action = "color_next_channel"    // Select next channel
	ActionColorPrevChannel    Action = "color_prev_channel"    // Select previous channel
	ActionColorIncrease       Action = "color_increase"        // Fine step up
	ActionColorDecrease       Action = "color_decrease"        // Fine step down
	ActionColorIncreaseCoarse Action = "color_increase_coarse" // Coarse step up
	ActionColorDecreaseCoarse Action = "color_decrease_coarse" // Coarse step down
	ActionColorEditHex        Action = "color_edit_hex"        // Type a hex value
	ActionColorCommit         Action = "color_commit"          // Write the color into the document
	ActionColorReset          Action = "color_reset"           // Restore the color the picker opened with

	// Modal actions
	ActionCloseModal  Action = "close_modal"   // Close current modal
	ActionConfirm     Action = "confirm"       // Confirm action (y/Y)
	ActionCancel      Action = "cancel"        // Cancel action (n/N)
	ActionSaveAndQuit Action = "save_and_quit" // Save then quit from the unsaved-changes prompt

	// Other actions
	ActionNoOp Action = "noop" // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:                {ActionQuit, "Quit", "Global"},
	ActionQuitForce:           {ActionQuitForce, "Force quit", "Global"},
	ActionNavigateUp:          {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:        {ActionNavigateDown, "Move down", "Navigation"},
	ActionPageUp:              {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:            {ActionPageDown, "Page down", "Navigation"},
	ActionHalfPageUp:          {ActionHalfPageUp, "Half page up", "Navigation"},
	ActionHalfPageDown:        {ActionHalfPageDown, "Half page down", "Navigation"},
	ActionGoToTop:             {ActionGoToTop, "Go to top", "Navigation"},
	ActionGoToBottom:          {ActionGoToBottom, "Go to bottom", "Navigation"},
	ActionGoToTopPrepare:      {ActionGoToTopPrepare, "Start go-to-top sequence", "Navigation"},
	ActionActivate:            {ActionActivate, "Edit / toggle / fold", "Form"},
	ActionExpand:              {ActionExpand, "Expand group", "Form"},
	ActionCollapse:            {ActionCollapse, "Collapse group", "Form"},
	ActionSave:                {ActionSave, "Save document", "Document"},
	ActionReload:              {ActionReload, "Reload from disk", "Document"},
	ActionCloseDocument:       {ActionCloseDocument, "Close document", "Document"},
	ActionOpenFile:            {ActionOpenFile, "Open file", "Document"},
	ActionCopyValue:           {ActionCopyValue, "Copy value", "Clipboard"},
	ActionPasteValue:          {ActionPasteValue, "Paste into field", "Clipboard"},
	ActionTogglePreview:       {ActionTogglePreview, "Toggle preview", "View"},
	ActionSwitchFocus:         {ActionSwitchFocus, "Switch focus", "View"},
	ActionOpenSearch:          {ActionOpenSearch, "Search fields", "Search"},
	ActionSearchNext:          {ActionSearchNext, "Next match", "Search"},
	ActionSearchPrevious:      {ActionSearchPrevious, "Previous match", "Search"},
	ActionSearchClear:         {ActionSearchClear, "Clear search", "Search"},
	ActionOpenQuery:           {ActionOpenQuery, "Query document", "Search"},
	ActionOpenHelp:            {ActionOpenHelp, "Help", "Information"},
	ActionTextSubmit:          {ActionTextSubmit, "Submit", "Text Input"},
	ActionTextCancel:          {ActionTextCancel, "Cancel", "Text Input"},
	ActionTextPaste:           {ActionTextPaste, "Paste", "Text Input"},
	ActionColorNextChannel:    {ActionColorNextChannel, "Next channel", "Color"},
	ActionColorPrevChannel:    {ActionColorPrevChannel, "Previous channel", "Color"},
	ActionColorIncrease:       {ActionColorIncrease, "Increase", "Color"},
	ActionColorDecrease:       {ActionColorDecrease, "Decrease", "Color"},
	ActionColorIncreaseCoarse: {ActionColorIncreaseCoarse, "Increase (coarse)", "Color"},
	ActionColorDecreaseCoarse: {ActionColorDecreaseCoarse, "Decrease (coarse)", "Color"},
	ActionColorEditHex:        {ActionColorEditHex, "Enter hex", "Color"},
	ActionColorCommit:         {ActionColorCommit, "Apply color", "Color"},
	ActionColorReset:          {ActionColorReset, "Reset color", "Color"},
	ActionCloseModal:          {ActionCloseModal, "Close", "Modal"},
	ActionConfirm:             {ActionConfirm, "Confirm", "Modal"},
	ActionCancel:              {ActionCancel, "Cancel", "Modal"},
	ActionSaveAndQuit:         {ActionSaveAndQuit, "Save and quit", "Modal"},
	ActionNoOp:                {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one the editor can perform
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// AllContexts lists every context in help display order
func AllContexts() []Context {
	return []Context{
		ContextGlobal,
		ContextEditor,
		ContextTextInput,
		ContextColor,
		ContextSearch,
		ContextQuery,
		ContextConfirm,
		ContextHelp,
		ContextViewer,
	}
}
