// Package application contains the command-line and server startup logic shared by the jsoncompare command.
package application
