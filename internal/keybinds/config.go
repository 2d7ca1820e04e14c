package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration. Each section maps
// an action name to a comma separated list of keys, e.g. "save": "ctrl+s,s".
type Config struct {
	Version   string                       `json:"version"`
	Global    map[string]string            `json:"global,omitempty"`
	Editor    map[string]string            `json:"editor,omitempty"`
	TextInput map[string]string            `json:"text_input,omitempty"`
	Color     map[string]string            `json:"color,omitempty"`
	Search    map[string]string            `json:"search,omitempty"`
	Query     map[string]string            `json:"query,omitempty"`
	Confirm   map[string]string            `json:"confirm,omitempty"`
	Help      map[string]string            `json:"help,omitempty"`
	Viewer    map[string]string            `json:"viewer,omitempty"`
	Custom    map[string]map[string]string `json:"custom,omitempty"`
}

// ConfigFileName is the name of the keybinding file inside the config directory
const ConfigFileName = "keybinds.json"

// LoadConfig loads keybinding configuration from a JSON file. Comments and
// trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", ConfigFileName, err)
	}

	return &config, nil
}

// sections maps config sections to contexts
func (c *Config) sections() map[Context]map[string]string {
	sections := map[Context]map[string]string{
		ContextGlobal:    c.Global,
		ContextEditor:    c.Editor,
		ContextTextInput: c.TextInput,
		ContextColor:     c.Color,
		ContextSearch:    c.Search,
		ContextQuery:     c.Query,
		ContextConfirm:   c.Confirm,
		ContextHelp:      c.Help,
		ContextViewer:    c.Viewer,
	}
	for name, bindings := range c.Custom {
		sections[Context(name)] = bindings
	}
	return sections
}

// ParseKeys splits a comma separated key list. "space" names the space bar
// and a lone "," binds the comma key.
func ParseKeys(list string) []string {
	if strings.TrimSpace(list) == "," {
		return []string{","}
	}
	var keys []string
	for _, k := range strings.Split(list, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if k == "space" {
			k = " "
		}
		keys = append(keys, k)
	}
	return keys
}

// ApplyConfig applies user configuration to a registry. Each configured
// action replaces the keys previously bound to it in that context. Sections
// and actions are applied in sorted order.
func ApplyConfig(registry *Registry, config *Config) error {
	sections := config.sections()
	contexts := make([]string, 0, len(sections))
	for context := range sections {
		contexts = append(contexts, string(context))
	}
	sort.Strings(contexts)

	for _, name := range contexts {
		context := Context(name)
		bindings := sections[context]
		actions := make([]string, 0, len(bindings))
		for actionStr := range bindings {
			actions = append(actions, actionStr)
		}
		sort.Strings(actions)

		for _, actionStr := range actions {
			action := Action(actionStr)
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("context '%s': %w", context, err)
			}

			keys := ParseKeys(bindings[actionStr])
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("context '%s', action '%s': %w", context, action, err)
				}
			}

			registry.Unbind(context, action)
			registry.RegisterMultiple(context, keys, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default
// registry. A config that binds one key to several actions of a section is
// rejected.
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", ConfigFileName, err)
		}

		if conflicts := FindConflicts(config); len(conflicts) > 0 {
			return nil, fmt.Errorf("conflicting keybinds in %s: %s", ConfigFileName, strings.Join(conflicts, "; "))
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}
	// If config doesn't exist, that's fine - use defaults

	return registry, nil
}
