// Package server implements the HTTP comparison service: POST /compare takes two JSON texts and
// returns the verdict as JSON, and GET /status reports that the service is running.
package server
