// Package shell provides shell integration for prompt rendering.
// It generates the xonsh init script that registers $PROMPT and $RIGHT_PROMPT
// callables, and the rc-file snippet that loads it at shell start.
package shell
