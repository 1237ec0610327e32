// Package ui contains the Bubble Tea program behind the session picker.
//
// Model owns a state.Selection for the lifetime of one run: key presses move
// the cursor or edit the substring filter, and every update repaints the
// whole view. The program ends in exactly one of two outcomes, a chosen
// session or a cancellation, which Choose reads back from the final model
// once Bubble Tea has restored the terminal.
package ui
