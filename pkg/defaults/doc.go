// Package defaults centralizes timeout constants shared across packages
// so that server and client behavior stays consistent and reviewable in
// one place.
package defaults
