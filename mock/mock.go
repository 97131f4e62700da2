// Package mock provides function-field mock implementations of the askweb
// domain interfaces for testing.
package mock
