// Package services provides domain services that implement business logic
// spanning more than one aggregate.
//
// The package includes:
//   - PriceCatalog: the immutable flavor/size price list used to capture item
//     unit prices at order time
//   - AccessPolicy: the authorization rules deciding which actor may read or
//     mutate which order
package services
