// Package kernel contains shared value objects used across domain models.
// It provides the UUID identifier type wrapped around github.com/google/uuid
// so that domain code does not depend on the library directly.
package kernel
