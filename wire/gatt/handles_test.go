package gatt

import (
	"testing"

	"github.com/pkg/errors"
)

func TestAttributeDatabaseBasics(t *testing.T) {
	db := NewAttributeDatabase()
	if !db.IsEmpty() {
		t.Fatal("New database should be empty")
	}

	if err := db.Insert(0x0001, UUIDPrimaryService, UUID16(0x1800)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := db.Insert(0x0003, UUID16(0x2a00), nil); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := db.Insert(0x0002, UUIDCharacteristic, []byte{0x02, 0x03, 0x00, 0x00, 0x2a}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if db.Count() != 3 {
		t.Errorf("Count = %d, want 3", db.Count())
	}
	if db.IsEmpty() {
		t.Error("IsEmpty = true after inserts")
	}
}

func TestGetAttribute(t *testing.T) {
	db := NewAttributeDatabase()
	db.Insert(0x0010, UUID16(0x2bc4), nil)

	attr, err := db.GetAttribute(0x0010)
	if err != nil {
		t.Fatalf("GetAttribute failed: %v", err)
	}
	if v, _ := attr.Type.Short(); v != 0x2bc4 {
		t.Errorf("Type = 0x%04X, want 0x2BC4", v)
	}

	// Returned attribute is a copy
	attr.Type[0] = 0xff
	again, _ := db.GetAttribute(0x0010)
	if v, _ := again.Type.Short(); v != 0x2bc4 {
		t.Errorf("Database modified through returned copy: 0x%04X", v)
	}

	_, err = db.GetAttribute(0x0011)
	if errors.Cause(err) != ErrInvalidHandle {
		t.Errorf("GetAttribute(0x0011) error = %v, want ErrInvalidHandle", err)
	}
}

func TestInsertRejectsInvalid(t *testing.T) {
	db := NewAttributeDatabase()

	if err := db.Insert(0x0000, UUID16(0x2a00), nil); errors.Cause(err) != ErrInvalidHandle {
		t.Errorf("Insert(0x0000) error = %v, want ErrInvalidHandle", err)
	}
	if err := db.Insert(0x0001, nil, nil); errors.Cause(err) != ErrInvalidUUID {
		t.Errorf("Insert(nil type) error = %v, want ErrInvalidUUID", err)
	}
	if !db.IsEmpty() {
		t.Error("Invalid inserts modified database")
	}
}

func TestClear(t *testing.T) {
	db := NewAttributeDatabase()
	db.Insert(0x0001, UUIDPrimaryService, nil)
	db.Clear()

	if !db.IsEmpty() {
		t.Errorf("Count after Clear = %d, want 0", db.Count())
	}
}
