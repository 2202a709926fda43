//go:build !windows

package outpath

const separators = "/"
