package main

import (
	"github.com/spf13/afero"
)

// FileSystem is where avl-ctl reads scripts from. It is the os file system
// unless a test swaps in an in-memory one.
type FileSystem = afero.Fs
