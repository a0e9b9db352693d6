package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/foliate/internal/command"
)

// KeyBinding maps a key chord to an editor command
type KeyBinding struct {
	Key         tcell.Key
	Mod         tcell.ModMask
	Description string
	Command     command.Handler
}

// keybindings is the navigation and editing table. Shifted chords run
// the extending variant of their unshifted command.
var keybindings = []KeyBinding{
	{Key: tcell.KeyRight, Description: "Move right", Command: command.MoveForward},
	{Key: tcell.KeyLeft, Description: "Move left", Command: command.MoveBackward},
	{Key: tcell.KeyUp, Description: "Move up", Command: command.MoveUp},
	{Key: tcell.KeyDown, Description: "Move down", Command: command.MoveDown},

	{Key: tcell.KeyRight, Mod: tcell.ModCtrl, Description: "Next word", Command: command.MoveForwardByWord},
	{Key: tcell.KeyLeft, Mod: tcell.ModCtrl, Description: "Previous word", Command: command.MoveBackwardByWord},

	{Key: tcell.KeyHome, Description: "Line start", Command: command.MoveToLineStart},
	{Key: tcell.KeyEnd, Description: "Line end", Command: command.MoveToLineEnd},
	{Key: tcell.KeyHome, Mod: tcell.ModCtrl, Description: "Document start", Command: command.MoveToDocumentStart},
	{Key: tcell.KeyEnd, Mod: tcell.ModCtrl, Description: "Document end", Command: command.MoveToDocumentEnd},

	{Key: tcell.KeyRight, Mod: tcell.ModShift, Description: "Extend right", Command: command.ExtendForward},
	{Key: tcell.KeyLeft, Mod: tcell.ModShift, Description: "Extend left", Command: command.ExtendBackward},
	{Key: tcell.KeyUp, Mod: tcell.ModShift, Description: "Extend up", Command: command.ExtendUp},
	{Key: tcell.KeyDown, Mod: tcell.ModShift, Description: "Extend down", Command: command.ExtendDown},
	{Key: tcell.KeyRight, Mod: tcell.ModShift | tcell.ModCtrl, Description: "Extend to next word", Command: command.ExtendForwardByWord},
	{Key: tcell.KeyLeft, Mod: tcell.ModShift | tcell.ModCtrl, Description: "Extend to previous word", Command: command.ExtendBackwardByWord},
	{Key: tcell.KeyHome, Mod: tcell.ModShift, Description: "Extend to line start", Command: command.ExtendToLineStart},
	{Key: tcell.KeyEnd, Mod: tcell.ModShift, Description: "Extend to line end", Command: command.ExtendToLineEnd},

	{Key: tcell.KeyCtrlA, Mod: tcell.ModCtrl, Description: "Select all", Command: command.SelectAll},

	{Key: tcell.KeyBackspace, Description: "Delete backward", Command: command.DeleteBackward},
	{Key: tcell.KeyBackspace2, Description: "Delete backward", Command: command.DeleteBackward},
	{Key: tcell.KeyDelete, Description: "Delete forward", Command: command.DeleteForward},
}

// lookupBinding finds the command bound to a key event, or nil.
func lookupBinding(ev *tcell.EventKey) command.Handler {
	for _, kb := range keybindings {
		if kb.Key == ev.Key() && kb.Mod == ev.Modifiers() {
			return kb.Command
		}
	}
	return nil
}
