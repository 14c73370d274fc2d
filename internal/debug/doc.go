// Package debug gates precondition checks on internal navigation.
//
// Release builds compile Assert down to nothing. Building with
//
//	go build -tags geocelldebug
//
// turns every violated precondition into a panic so that programmer errors
// surface at the call site instead of as an invalid id further downstream.
package debug
