// Package executor runs a validated task graph: a serial depth-first
// postorder walk from the target, executing every reachable task exactly
// once per invocation and halting at the first failing recipe command.
package executor
