// Package command handles named editor commands such as inline-style
// toggles, deletion, history, and paragraph splitting.
package command
