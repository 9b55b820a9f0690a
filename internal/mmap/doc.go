// Package mmap maps front files read-only into memory.
//
// Front files are parsed in a single sequential pass, so mappings are
// advised for sequential access. On platforms without mmap(2) the file is
// read into memory instead.
//
//	m, err := mmap.Open("fronts.txt")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
package mmap
