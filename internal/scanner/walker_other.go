//go:build !unix

package scanner

import "io/fs"

func fileSize(info fs.FileInfo) int64 {
	return info.Size()
}
