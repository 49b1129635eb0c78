package tray

// Event identifies something the OS tray delivered: a menu item id or an
// activation of the icon itself.
type Event string

const (
	EventShow      Event = "show"
	EventQuit      Event = "quit"
	EventIconClick Event = "icon-click"
)

// Action is what the controller does in response to an Event.
type Action int

const (
	ActionNone Action = iota
	ActionShow
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionShow:
		return "show"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Resolve maps an event to its action. Unknown events resolve to ActionNone.
func Resolve(ev Event) Action {
	switch ev {
	case EventShow, EventIconClick:
		return ActionShow
	case EventQuit:
		return ActionQuit
	default:
		return ActionNone
	}
}

// Tooltip identifies the tray icon.
const Tooltip = "RelayPulse"

// MenuItem describes one entry of the tray menu.
type MenuItem struct {
	ID      Event
	Label   string
	Tooltip string
}

// Menu lists the tray menu entries in display order.
var Menu = []MenuItem{
	{ID: EventShow, Label: "Show window", Tooltip: "Bring the RelayPulse window to the front"},
	{ID: EventQuit, Label: "Quit", Tooltip: "Quit RelayPulse"},
}
