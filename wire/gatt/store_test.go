package gatt

import (
	"os"
	"path/filepath"
	"testing"
)

const testAttributes = `[Attributes]
0001=2800:0005:00001801-0000-1000-8000-00805f9b34fb
0002=2803:0003:20:00002a05-0000-1000-8000-00805f9b34fb
0004=00002902-0000-1000-8000-00805f9b34fb
0006=2800:000b:0000184e-0000-1000-8000-00805f9b34fb
0007=2803:0008:12:00002bc4-0000-1000-8000-00805f9b34fb
0009=0001:00002902-0000-1000-8000-00805f9b34fb
000a=2803:000b:1c:2bc6
000c=2802:0020:0030:180f
000d=bogus:value:here:too:many
`

func writeDB(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFileStoreLoad(t *testing.T) {
	root := t.TempDir()
	writeDB(t, root, "00:11:22:33:44:55/cache/66:77:88:99:AA:BB", testAttributes)

	db := NewAttributeDatabase()
	err := NewFileStore(root).Load(db, "00:11:22:33:44:55/cache/66:77:88:99:AA:BB")
	if err == nil {
		t.Error("Expected error for malformed entry 000d")
	}

	tests := []struct {
		handle uint16
		typ    uint16
	}{
		{0x0001, 0x2800},
		{0x0002, 0x2803},
		{0x0003, 0x2a05},
		{0x0004, 0x2902},
		{0x0007, 0x2803},
		{0x0008, 0x2bc4},
		{0x0009, 0x2902},
		{0x000b, 0x2bc6},
		{0x000c, 0x2802},
	}
	for _, tt := range tests {
		attr, err := db.GetAttribute(tt.handle)
		if err != nil {
			t.Errorf("Handle 0x%04X: %v", tt.handle, err)
			continue
		}
		if v, ok := attr.Type.Short(); !ok || v != tt.typ {
			t.Errorf("Handle 0x%04X type = %v, want 0x%04X", tt.handle, attr.Type, tt.typ)
		}
	}

	if _, err := db.GetAttribute(0x000d); err == nil {
		t.Error("Malformed entry 000d was loaded")
	}

	decl, _ := db.GetAttribute(0x0007)
	if len(decl.Value) != 5 || decl.Value[0] != 0x12 || decl.Value[1] != 0x08 || decl.Value[2] != 0x00 {
		t.Errorf("Characteristic declaration value = %x", decl.Value)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	db := NewAttributeDatabase()
	if err := NewFileStore(t.TempDir()).Load(db, "none/attributes"); err == nil {
		t.Error("Expected error for missing file")
	}
	if !db.IsEmpty() {
		t.Error("Database populated from missing file")
	}
}

func TestFileStoreNoAttributesGroup(t *testing.T) {
	root := t.TempDir()
	writeDB(t, root, "dev/attributes", "[General]\nName=x\n")

	if err := NewFileStore(root).Load(NewAttributeDatabase(), "dev/attributes"); err == nil {
		t.Error("Expected error for missing [Attributes] group")
	}
}
