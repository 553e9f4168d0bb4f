// Package tui provides terminal user interface components for venvdir.
//
// This package uses the Bubble Tea framework for the interactive entry
// picker behind "venvdir pick".
//
// # Entry Picker
//
//	result, err := tui.RunPicker(entries)
//	switch result.Action {
//	case tui.ActionSelect:
//	    // Print result.Entry.Path()
//	case tui.ActionRemove:
//	    // Suggest removing result.Entry
//	case tui.ActionQuit, tui.ActionNone:
//	    // Exit
//	}
//
// Keys: Enter (select), d (remove), / (filter), q or Esc (quit).
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
