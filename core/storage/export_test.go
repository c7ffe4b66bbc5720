package storage

import "io"

var CopyChunked = copyChunked

func (m *Media) WriteArchive(out io.Writer, members []string) (int64, error) {
	return m.writeArchive(out, members)
}
