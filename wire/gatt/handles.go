package gatt

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/user/attmon/wire/att"
)

// ErrInvalidHandle is returned for handles with no attribute
var ErrInvalidHandle = errors.New("gatt: invalid handle")

// Well-known GATT UUIDs (16-bit)
var (
	// Service declarations
	UUIDPrimaryService   = UUID16(0x2800)
	UUIDSecondaryService = UUID16(0x2801)
	UUIDInclude          = UUID16(0x2802)
	UUIDCharacteristic   = UUID16(0x2803)

	// Descriptors
	UUIDClientCharacteristicConfig = UUID16(0x2902)
)

// PropertyBits labels the properties octet of a characteristic declaration
var PropertyBits = att.Bitfield{Width: 8, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "Broadcast"},
	{Bit: 1, Label: "Read"},
	{Bit: 2, Label: "Write Without Response"},
	{Bit: 3, Label: "Write"},
	{Bit: 4, Label: "Notify"},
	{Bit: 5, Label: "Indicate"},
	{Bit: 6, Label: "Authenticated Signed Writes"},
	{Bit: 7, Label: "Extended Properties"},
}}

// Attribute is one entry of an attribute database
type Attribute struct {
	Handle uint16
	Type   UUID
	Value  []byte // declaration value, if known
}

// AttributeDatabase maps handles to attributes. A dissector keeps one for the
// local device and one for each peer.
type AttributeDatabase struct {
	mu         sync.RWMutex
	attributes map[uint16]*Attribute
}

// NewAttributeDatabase creates an empty attribute database
func NewAttributeDatabase() *AttributeDatabase {
	return &AttributeDatabase{
		attributes: make(map[uint16]*Attribute),
	}
}

// Insert stores an attribute at handle, replacing any previous one
func (db *AttributeDatabase) Insert(handle uint16, attrType UUID, value []byte) error {
	if handle == 0 {
		return errors.Wrap(ErrInvalidHandle, "handle 0x0000 is reserved")
	}
	if len(attrType) == 0 {
		return errors.Wrapf(ErrInvalidUUID, "empty type at handle 0x%04x", handle)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.attributes[handle] = &Attribute{
		Handle: handle,
		Type:   append(UUID{}, attrType...),
		Value:  append([]byte{}, value...),
	}
	return nil
}

// GetAttribute retrieves an attribute by handle
func (db *AttributeDatabase) GetAttribute(handle uint16) (*Attribute, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	attr, ok := db.attributes[handle]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHandle, "0x%04x", handle)
	}

	// Return a copy to prevent external modification
	return &Attribute{
		Handle: attr.Handle,
		Type:   append(UUID{}, attr.Type...),
		Value:  append([]byte{}, attr.Value...),
	}, nil
}

// Count returns the number of attributes in the database
func (db *AttributeDatabase) Count() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.attributes)
}

// IsEmpty reports whether the database holds no attributes
func (db *AttributeDatabase) IsEmpty() bool {
	return db.Count() == 0
}

// Clear removes all attributes from the database
func (db *AttributeDatabase) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.attributes = make(map[uint16]*Attribute)
}
