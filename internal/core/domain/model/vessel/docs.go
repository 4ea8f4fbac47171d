// Package vessel provides the Vessel aggregate: hull dimensions, class,
// owner, the berth it is docked at and its lifecycle status.
//
// Lifecycle:
//
//	Registered ──┬──> Queued ──┐
//	             │             ▼
//	             └────────> Docked ──> ScheduledDeparture ──> Departed
//	                           │                                 ▲
//	                           └─────────────────────────────────┘
//
// Priority is derived once at registration from the class and how soon the
// vessel asked to arrive. The berth reference is an identifier only; the
// berth itself lives in its own aggregate.
package vessel
