// Package ports defines the interfaces between the session orchestrator and
// its collaborators: the terminal adapter, the per-step prompt state
// machines, and the step definition surface exposed to callers.
//
// Following hexagonal convention, the core depends only on these contracts;
// concrete adapters live under internal/adapters and pkg/prompts.
package ports
