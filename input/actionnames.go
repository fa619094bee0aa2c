package input

import "strings"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	return map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// Player 1
		"p1_left":     {1, IntentMoveLeft},
		"p1_right":    {1, IntentMoveRight},
		"p1_fire":     {1, IntentFire},
		"p1_use_item": {1, IntentUseItem},

		// Player 2
		"p2_left":     {2, IntentMoveLeft},
		"p2_right":    {2, IntentMoveRight},
		"p2_fire":     {2, IntentFire},
		"p2_use_item": {2, IntentUseItem},

		// Shared
		"pause":        {0, IntentPause},
		"back":         {0, IntentBack},
		"up":           {0, IntentUp},
		"down":         {0, IntentDown},
		"confirm":      {0, IntentConfirm},
		"quit":         {0, IntentQuit},
		"toggle_mute":  {0, IntentToggleMute},
		"toggle_debug": {0, IntentToggleDebug},
	}
}

// ActionEntry looks up a KeyEntry by action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// ActionNames returns the names of all bindable actions, excluding the unbind sentinel
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		if name != "none" {
			names = append(names, name)
		}
	}
	return names
}
