// Package app wires the marketplace core: the entity store, the operation
// gateway, the remote backend and session persistence. Consumers hold an
// Application handle; there are no package-level singletons.
//
// # Package Structure
//
//	internal/app/
//	├── application.go      # Application struct, wiring, and startup
//	├── domain/             # Domain models (pure data structures)
//	│   ├── user/           # Users and roles
//	│   ├── land/           # Listings, locations, browse filters
//	│   ├── lease/          # Lease requests and their lifecycle
//	│   └── chat/           # Conversation messages
//	├── remote/             # Boundary to the marketplace backend
//	│   ├── interfaces.go   # AuthAPI, LandAPI, LeaseAPI, ChatAPI
//	│   ├── memory.go       # In-memory stub implementation
//	│   └── fixtures.go     # Demo seed data
//	├── store/              # Normalised entity store (four slices)
//	├── views/              # Pure derived-view selectors
//	├── gateway/            # Async operation gateway (Task, dispatch)
//	├── session/            # Durable session record + validator seam
//	└── metrics/            # Prometheus collectors for operations
//
// State flows one way: the gateway dispatches a remote call, marks the
// owning slice loading, and on settlement applies exactly one reducer to
// the store. Views recompute from slice snapshots on every read.
package app
