// Package inventory enumerates the block devices an install may target.
// Probing can be slow on real hardware, so it runs off the display loop and
// consumers poll Probed before reading results.
package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Device is one install target candidate.
type Device struct {
	Name      string
	SizeBytes int64
	Removable bool
}

// Inventory is the device enumeration handle shared across screens.
// Implementations must be safe for concurrent reads.
type Inventory interface {
	// Probe scans the system and populates the device list. It may be slow
	// and is expected to run on a background worker.
	Probe() error
	// Probed reports whether a probe has completed since startup.
	Probed() bool
	// Devices returns the result of the last completed probe.
	Devices() []Device
}

// SysfsInventory reads block devices from the kernel's sysfs tree.
type SysfsInventory struct {
	Root string // defaults to /sys/block

	mu      sync.RWMutex
	probed  bool
	devices []Device
}

func NewSysfs() *SysfsInventory {
	return &SysfsInventory{Root: "/sys/block"}
}

func (s *SysfsInventory) Probe() error {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return fmt.Errorf("inventory probe: %w", err)
	}
	devices := make([]Device, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		// loop and ram devices are never install targets
		if strings.HasPrefix(name, "loop") || strings.HasPrefix(name, "ram") {
			continue
		}
		dev := Device{Name: name}
		if sectors, err := readInt(filepath.Join(s.Root, name, "size")); err == nil {
			dev.SizeBytes = sectors * 512
		}
		if rm, err := readInt(filepath.Join(s.Root, name, "removable")); err == nil {
			dev.Removable = rm == 1
		}
		devices = append(devices, dev)
	}
	s.mu.Lock()
	s.devices = devices
	s.probed = true
	s.mu.Unlock()
	return nil
}

func (s *SysfsInventory) Probed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.probed
}

func (s *SysfsInventory) Devices() []Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Device, len(s.devices))
	copy(out, s.devices)
	return out
}

func readInt(path string) (int64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
}

// Static is a fixed inventory, useful for tests and dry runs.
type Static struct {
	mu     sync.RWMutex
	probed bool
	list   []Device
}

func NewStatic(devices ...Device) *Static {
	return &Static{list: devices}
}

func (s *Static) Probe() error {
	s.mu.Lock()
	s.probed = true
	s.mu.Unlock()
	return nil
}

func (s *Static) Probed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.probed
}

func (s *Static) Devices() []Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Device, len(s.list))
	copy(out, s.list)
	return out
}
