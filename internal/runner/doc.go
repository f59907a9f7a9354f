// Package runner executes a preset's command string as a child process. The
// string is parsed and interpreted as POSIX shell, so the same preset works
// on every platform without a system shell, and the child inherits the
// caller's standard streams so progress is visible live.
package runner
