// Package process launches external commands with the caller's standard
// streams and reports their exit status.
//
// Exit status mapping:
// - normal exit: the process exit code
//
// - killed by a signal: 128 + signal number
//
// - command not found or not executable: 127
package process
