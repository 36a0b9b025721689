// Package sharedtest provides helper code that may be used by tests in all packages of this module.
//
// Non-test code should never import this package.
package sharedtest
