// Package orchestrator wires the catalog → form → replay → submit → renderer
// pipeline into one call, with dependency injection friendly options for
// hosts that need to swap any stage.
package orchestrator
