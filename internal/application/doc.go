// Package application provides application initialization and dependency wiring.
// It encapsulates catalog bootstrapping and the creation of solvers, handlers,
// routers, and HTTP server instances, making the main package cleaner and more
// focused on CLI parsing and orchestration.
package application
