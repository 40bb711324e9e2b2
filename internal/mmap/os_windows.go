//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	// VirtualAlloc with MEM_COMMIT uses demand-paging: pages are only backed
	// by physical memory when first accessed, similar to Unix mmap behavior.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return data, func(b []byte) error {
		// VirtualFree with MEM_RELEASE frees the entire region.
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}, nil
}
