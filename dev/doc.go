// Package dev holds repository checks that are too slow or too noisy for a
// plain go test run. Each check is behind a build tag:
//
//	go test -tags dev ./dev        # ANSI lint, declaration order, test redundancy
//	go test -tags mutation ./dev   # mutation testing
package dev
