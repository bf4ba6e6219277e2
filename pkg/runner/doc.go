// Package runner hosts sessions on a real or fake terminal.
//
// A Runner owns everything the orchestrator deliberately does not: raw
// mode, the blocking read loop, SIGINT/SIGTERM handling and diffed frame
// rendering. Inject a ports.Terminal with WithTerminal to drive a session
// headlessly in tests.
package runner
