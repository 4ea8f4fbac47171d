// Package kernel provides the shared value objects of the port domain.
//
// The package includes:
//   - ID: a sequential identifier issued per entity class by the counter service
//   - EntityClass: the namespaces identifiers are issued in
//   - Tick: a point on the logical clock shared by all components
//   - Dimensions: the length/beam/draft triple used for vessels and berth envelopes
//   - Principal and Role: the caller identity and the roles checked by the authorization gate
//
// All values are immutable and safe to share between goroutines.
package kernel
