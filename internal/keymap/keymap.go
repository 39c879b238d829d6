package keymap

// Contexts group bindings for the help popup and for resolvers.
const (
	ContextGlobal  = "global"
	ContextList    = "list"
	ContextDesktop = "desktop"
	ContextMobile  = "mobile"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"f1"}, "Show help", ContextGlobal},
	{ActionSwitchLayout, []string{"f2"}, "Switch desktop/mobile layout", ContextGlobal},

	// Result list
	{ActionMoveDown, []string{"down", "ctrl+n"}, "Next suggestion", ContextList},
	{ActionMoveUp, []string{"up", "ctrl+p"}, "Previous suggestion", ContextList},
	{ActionSelect, []string{"enter"}, "Search selection or typed text", ContextList},
	{ActionClear, []string{"esc"}, "Clear search", ContextList},

	// Desktop
	{ActionToggleDropdown, []string{"ctrl+o"}, "Open/close suggestions", ContextDesktop},

	// Mobile
	{ActionOpenOverlay, []string{"enter", "/"}, "Open search", ContextMobile},
	{ActionBack, []string{"ctrl+b"}, "Close search", ContextMobile},
	{ActionErase, []string{"ctrl+l"}, "Erase text", ContextMobile},
	{ActionSubmit, []string{"ctrl+s"}, "Search typed text", ContextMobile},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
