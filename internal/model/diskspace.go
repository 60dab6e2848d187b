package model

// DiskSpace returns total and free bytes for the filesystem containing path.
// Both are zero when the platform query fails; callers treat that as
// "unknown" and skip the display.
func DiskSpace(path string) (total, free int64) {
	return diskSpace(path)
}
