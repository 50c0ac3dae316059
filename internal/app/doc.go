// Package app contains the core application logic of the critpath CLI. It
// defines the App struct, its configuration and the run pipeline (load,
// compute, render), decoupled from flag parsing and process exit codes.
package app
