package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// Issue types reported by the validator
const (
	IssueConflict = "conflict"
	IssueInvalid  = "invalid"
	IssueWarning  = "warning"
)

// ValidationError is one problem found in a keybinding setup
type ValidationError struct {
	Type    string
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult collects errors, which make a config unusable, and
// warnings, which are only reported
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) HasErrors() bool   { return len(r.Errors) > 0 }
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) warn(context Context, key, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, ValidationError{
		Type:    IssueWarning,
		Context: context,
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *ValidationResult) merge(other *ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// String lists every issue, errors first
func (r *ValidationResult) String() string {
	if !r.HasErrors() && !r.HasWarnings() {
		return "No issues found"
	}
	var sb strings.Builder
	writeIssues(&sb, "Errors", r.Errors)
	writeIssues(&sb, "Warnings", r.Warnings)
	return sb.String()
}

func writeIssues(sb *strings.Builder, title string, issues []ValidationError) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s (%d):\n", title, len(issues))
	for i := range issues {
		fmt.Fprintf(sb, "  - %s\n", issues[i].Error())
	}
}

// Validator checks registries and user configs
type Validator struct {
	// reserved maps a global key to the only action it may trigger
	reserved map[string]Action

	// parents holds the context each context falls back to in Match
	parents map[Context]Context
}

// NewValidator creates a validator for the editor's contexts
func NewValidator() *Validator {
	parents := make(map[Context]Context)
	for _, c := range AllContexts() {
		if c != ContextGlobal {
			parents[c] = ContextGlobal
		}
	}
	return &Validator{
		reserved: map[string]Action{"ctrl+c": ActionQuitForce},
		parents:  parents,
	}
}

// ValidateRegistry reports rebound reserved keys, sequences the matcher
// cannot complete and bindings that shadow their parent context. None of
// these are errors.
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{}
	v.checkReservedKeys(registry, result)
	v.checkMultiKeySequences(registry, result)
	v.checkShadowing(registry, result)
	return result
}

// ValidateConfig checks a user config before it is applied: keys bound to
// several actions of one section, unknown actions and invalid keys are
// errors. The config is then applied to an empty registry and validated.
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{}
	v.checkDuplicateBindings(config, result)

	registry := NewRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    IssueInvalid,
			Message: err.Error(),
		})
		return result
	}

	result.merge(v.ValidateRegistry(registry))
	return result
}

// checkDuplicateBindings reports a key listed under more than one action of
// a section. Applying such a config would keep only one of them.
func (v *Validator) checkDuplicateBindings(config *Config, result *ValidationResult) {
	for context, bindings := range config.sections() {
		keyActions := make(map[string][]string)
		for action, keyList := range bindings {
			for _, key := range ParseKeys(keyList) {
				if n := len(keyActions[key]); n > 0 && keyActions[key][n-1] == action {
					continue
				}
				keyActions[key] = append(keyActions[key], action)
			}
		}

		for key, actions := range keyActions {
			if len(actions) < 2 {
				continue
			}
			sort.Strings(actions)
			result.Errors = append(result.Errors, ValidationError{
				Type:    IssueConflict,
				Context: context,
				Key:     key,
				Message: fmt.Sprintf("key bound %d times (%s)", len(actions), strings.Join(actions, ", ")),
			})
		}
	}
}

func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	global := registry.bindings[ContextGlobal]
	for key, want := range v.reserved {
		if got, ok := global[key]; ok && got != want {
			result.warn(ContextGlobal, key, "reserved key rebound (may cause issues)")
		}
	}
}

// namedKeys are multi-character key names that are not sequences
var namedKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"enter": true, "esc": true, "tab": true, "space": true,
	"backspace": true, "delete": true, "insert": true,
	"home": true, "end": true, "pgup": true, "pgdown": true,
}

// isSequence reports whether key is a multi-key sequence like "gg"
func isSequence(key string) bool {
	if len([]rune(key)) < 2 || strings.Contains(key, "+") || namedKeys[key] {
		return false
	}
	// Function keys
	if key[0] == 'f' && len(key) <= 3 && strings.Trim(key[1:], "0123456789") == "" {
		return false
	}
	return true
}

// checkMultiKeySequences warns about sequences the matcher can never complete.
// Only two-key sequences starting with 'g' are recognised.
func (v *Validator) checkMultiKeySequences(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key := range bindings {
			if isSequence(key) && (len(key) != 2 || key[0] != 'g') {
				result.warn(context, key, "unsupported key sequence (only 'g' followed by one key is recognised)")
			}
		}
	}
}

// checkShadowing warns about keys whose binding hides a different action of
// the parent context
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		parent, ok := v.parents[context]
		if !ok {
			continue
		}
		for key, action := range bindings {
			if parentAction, ok := registry.bindings[parent][key]; ok && parentAction != action {
				result.warn(context, key, "shadows %s binding (%s -> %s)", parent, parentAction, action)
			}
		}
	}
}

// FindConflicts returns the conflicts ValidateConfig reports for config
func FindConflicts(config *Config) []string {
	var conflicts []string
	for _, err := range NewValidator().ValidateConfig(config).Errors {
		if err.Type == IssueConflict {
			conflicts = append(conflicts, err.Error())
		}
	}
	return conflicts
}

var modifiers = []string{"ctrl+", "alt+", "shift+", "super+"}

// ValidateKey rejects empty keys and modifiers with nothing after them,
// e.g. "ctrl+" or "ctrl+shift+"
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	rest := key
	for stripped := true; stripped; {
		stripped = false
		for _, mod := range modifiers {
			if strings.HasPrefix(rest, mod) {
				rest = rest[len(mod):]
				stripped = true
			}
		}
	}
	if rest == "" {
		return fmt.Errorf("modifier without key: %s", key)
	}
	return nil
}

// ValidateAction rejects names the editor has no action for
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action: %s", actionStr)
	}
	return nil
}
