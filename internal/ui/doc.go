// Package ui provides terminal output formatting for claude-persistent.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed hints for the next step after a failure
//   - Yes/no prompts
//
// All output goes to ui.Out (defaults to os.Stderr, leaving stdout to the
// tool) and prompts read from ui.In, so both can be redirected in tests.
//
// Example usage:
//
//	ui.Info("Starting container...")
//	ui.Success("Container ready")
//
//	if ui.AskYesNo("Build the image now?", true) {
//	    // ...
//	}
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
