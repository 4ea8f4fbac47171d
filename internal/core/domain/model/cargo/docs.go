// Package cargo provides the Container aggregate and the immutable
// Checkpoint records that form its movement history.
//
// A container's handling priority is fixed at registration from its cargo
// type and container type. Status follows the handling it receives:
//
//	arriving ─> unloading ─> in-yard ─> loading ─> loaded ─> departed
//	                            │
//	                            └─> in-transit ─> transferred
//
// Movements reported by tracking may set any status except that a departed
// container accepts no further handling operations.
package cargo
