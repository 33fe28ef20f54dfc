// Package config defines Params, the single value threaded into every
// engine constructor in place of the original tool's gflags globals, and a
// Parse function that reads them from a flag.FlagSet.
//
// Grounded on the original tool's her/flags.h/flags.cc for the flag
// catalogue and defaults.
package config
