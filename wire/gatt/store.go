package gatt

import (
	"encoding/binary"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// Loader fills an attribute database from persistent storage
type Loader interface {
	Load(db *AttributeDatabase, name string) error
}

// FileStore reads attribute databases stored by bluetoothd. Files are key
// files whose [Attributes] group maps a 4 digit hex handle to one of:
//
//	2800:<end>:<uuid>            primary service
//	2801:<end>:<uuid>            secondary service
//	2802:<start>:<end>:<uuid>    include
//	2803:<value>:<props>:<uuid>  characteristic
//	<uuid> or <value>:<uuid>     descriptor
type FileStore struct {
	Root string
}

// NewFileStore creates a store rooted at dir, usually /var/lib/bluetooth
func NewFileStore(dir string) *FileStore {
	return &FileStore{Root: dir}
}

// Path returns the file backing name
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.Root, filepath.FromSlash(name))
}

// Load reads name into db. Malformed entries are skipped; the first one is
// reported in the returned error after the remaining entries are loaded.
func (s *FileStore) Load(db *AttributeDatabase, name string) error {
	path := s.Path(name)

	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:  "=",
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return errors.Wrapf(err, "load attribute db %s", path)
	}

	sec, err := f.GetSection("Attributes")
	if err != nil {
		return errors.Wrapf(err, "attribute db %s", path)
	}

	var firstErr error
	for _, k := range sec.Keys() {
		if err := loadEntry(db, k.Name(), k.Value()); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "%s: entry %s", path, k.Name())
		}
	}
	return firstErr
}

func loadEntry(db *AttributeDatabase, key, value string) error {
	handle, err := parseHandle(key)
	if err != nil {
		return err
	}

	parts := strings.Split(value, ":")
	switch {
	case len(parts) == 3 && (parts[0] == "2800" || parts[0] == "2801"):
		if _, err := parseHandle(parts[1]); err != nil {
			return err
		}
		u, err := ParseUUID(parts[2])
		if err != nil {
			return err
		}
		typ := UUIDPrimaryService
		if parts[0] == "2801" {
			typ = UUIDSecondaryService
		}
		return db.Insert(handle, typ, u)

	case len(parts) == 4 && parts[0] == "2802":
		start, err := parseHandle(parts[1])
		if err != nil {
			return err
		}
		end, err := parseHandle(parts[2])
		if err != nil {
			return err
		}
		u, err := ParseUUID(parts[3])
		if err != nil {
			return err
		}
		v := make([]byte, 4, 4+len(u))
		binary.LittleEndian.PutUint16(v, start)
		binary.LittleEndian.PutUint16(v[2:], end)
		return db.Insert(handle, UUIDInclude, append(v, u...))

	case len(parts) == 4 && parts[0] == "2803":
		valueHandle, err := parseHandle(parts[1])
		if err != nil {
			return err
		}
		props, err := strconv.ParseUint(parts[2], 16, 8)
		if err != nil {
			return errors.Wrapf(err, "properties %q", parts[2])
		}
		u, err := ParseUUID(parts[3])
		if err != nil {
			return err
		}
		v := make([]byte, 3, 3+len(u))
		v[0] = byte(props)
		binary.LittleEndian.PutUint16(v[1:], valueHandle)
		if err := db.Insert(handle, UUIDCharacteristic, append(v, u...)); err != nil {
			return err
		}
		return db.Insert(valueHandle, u, nil)

	case len(parts) == 1:
		u, err := ParseUUID(parts[0])
		if err != nil {
			return err
		}
		return db.Insert(handle, u, nil)

	case len(parts) == 2:
		u, err := ParseUUID(parts[1])
		if err != nil {
			return err
		}
		return db.Insert(handle, u, nil)
	}

	return errors.Errorf("unrecognized attribute %q", value)
}

func parseHandle(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidHandle, "%q", s)
	}
	return uint16(v), nil
}
