// Package domain contains the customer aggregate and the value objects it is
// built from (Name, Email, Industry, EmailSettings). These types enforce their
// own invariants and are free of infrastructure concerns so they can be shared
// across the storage, service and API layers.
//
// Validating factories return result.Of values; constructor inputs that reach
// the aggregate are already valid. Breaking an invariant (promoting a Gold
// customer, an industry outside the catalog) is a programming error and panics.
package domain
