// Package cli implements the geocell command line tool.
package cli
