// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (select a preset, check
// the working directory, run the command, report the outcome), decoupled
// from the command-line entrypoint.
package app
