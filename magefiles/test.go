//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test in the module.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs the tests with coverage reporting.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-cover", "./...")
}

// Race runs the tests under the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}
