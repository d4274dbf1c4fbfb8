package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSysfsDevice(t *testing.T, root, name string, sectors, removable string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "size"), []byte(sectors+"\n"), 0o644); err != nil {
		t.Fatalf("write size: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "removable"), []byte(removable+"\n"), 0o644); err != nil {
		t.Fatalf("write removable: %v", err)
	}
}

func TestSysfsProbe(t *testing.T) {
	root := t.TempDir()
	writeSysfsDevice(t, root, "sda", "976773168", "0") // ~465 GiB
	writeSysfsDevice(t, root, "sdb", "61440000", "1")
	writeSysfsDevice(t, root, "loop0", "8192", "0")
	writeSysfsDevice(t, root, "ram0", "8192", "0")

	inv := &SysfsInventory{Root: root}
	if inv.Probed() {
		t.Fatalf("probed before any probe ran")
	}
	if err := inv.Probe(); err != nil {
		t.Fatalf("probe: %v", err)
	}
	if !inv.Probed() {
		t.Fatalf("probe completion not recorded")
	}

	devices := inv.Devices()
	if len(devices) != 2 {
		t.Fatalf("want sda and sdb only, got %v", devices)
	}
	byName := map[string]Device{}
	for _, d := range devices {
		byName[d.Name] = d
	}
	if got := byName["sda"].SizeBytes; got != 976773168*512 {
		t.Fatalf("sda size: %d", got)
	}
	if byName["sda"].Removable {
		t.Fatalf("sda is fixed")
	}
	if !byName["sdb"].Removable {
		t.Fatalf("sdb is removable")
	}
}

func TestSysfsProbeMissingRoot(t *testing.T) {
	inv := &SysfsInventory{Root: filepath.Join(t.TempDir(), "nope")}
	if err := inv.Probe(); err == nil {
		t.Fatalf("probe of a missing tree must fail")
	}
	if inv.Probed() {
		t.Fatalf("a failed probe is not a completed probe")
	}
}

func TestStaticInventory(t *testing.T) {
	inv := NewStatic(Device{Name: "vda", SizeBytes: 20 << 30})
	if inv.Probed() {
		t.Fatalf("static inventory still requires an explicit probe")
	}
	if err := inv.Probe(); err != nil {
		t.Fatalf("probe: %v", err)
	}
	devices := inv.Devices()
	if len(devices) != 1 || devices[0].Name != "vda" {
		t.Fatalf("devices: %v", devices)
	}

	// callers get a copy, not the backing slice
	devices[0].Name = "mangled"
	if inv.Devices()[0].Name != "vda" {
		t.Fatalf("Devices must return a copy")
	}
}
