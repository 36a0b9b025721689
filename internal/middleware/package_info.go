// Package middleware contains HTTP middleware used by the comparison service.
package middleware
