// Package logging contains the ldlog setup shared by the jsoncompare command and the comparison service.
//
// The comparison packages themselves (jsonvalue, jsoncompare) never log; only the command-line tool,
// the HTTP service and the batch runner do.
package logging
