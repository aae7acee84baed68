// Package osutil holds the file modes locktfin creates files with
package osutil

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
