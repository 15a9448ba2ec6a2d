// Package ui contains the optional Bubble Tea front end for the menu. It
// implements the same prompter contract as the line prompter, so the
// dispatcher is unaware of which one is active.
//
// Each selection runs a short-lived Bubble Tea program over a Model that
// lists the menu entries. Pressing an entry's key picks it immediately,
// letters narrow the list through a fuzzy filter kept in internal/ui/state,
// and enter picks the entry under the cursor. Free-text replies run a second
// program around a Form built on a bubbles text input.
//
// Programs never overlap with external commands: the dispatcher only runs a
// command after the picker program has exited and restored the terminal.
package ui
