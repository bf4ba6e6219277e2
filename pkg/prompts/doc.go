// Package prompts provides the built-in prompt state machines: free-form
// Input (plain or secret), Select (single/multi), Confirm (Yes/No) and
// Note (markdown acknowledgement).
//
// Prompt kinds form a closed set behind the ports.Prompt contract; a step
// picks one through its factory function at definition time.
package prompts
