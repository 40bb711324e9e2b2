// Package mmap provides anonymous memory mappings for off-heap page storage.
//
// The identifier arena keeps interned string bytes in pages that live for the
// whole process. Mapping those pages anonymously keeps them outside the Go
// garbage collector's scan set.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
package mmap
