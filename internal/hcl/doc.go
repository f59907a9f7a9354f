// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses covrunner.hcl, evaluates expressions against the
// process environment, and translates the result into a config.Model.
package hcl
