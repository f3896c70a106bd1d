// Package kernel contains shared value objects for the pizzaria domain model.
//
// The kernel holds building blocks that are not specific to any single
// aggregate: currently the UUID identity value object used by users, orders,
// and line items. Value objects here are immutable, validated on
// construction, and safe for concurrent use.
package kernel
