package main

import "path/filepath"

// TrimExt removes the extension from filename
func TrimExt(filename string) string {
	return filename[:len(filename)-len(filepath.Ext(filename))]
}
