// Package dag builds and validates the task graph: one node per task from
// the config model, with prerequisite edges in declared order. All
// configuration errors (duplicate names, unresolved references, cycles)
// surface from Build, before a single recipe command has run.
package dag
