// Package prompt connects a host shell's prompt hooks to an external prompt
// renderer. Each render reads the latest command outcome, runs the renderer
// once and returns its stdout as the prompt text.
package prompt
