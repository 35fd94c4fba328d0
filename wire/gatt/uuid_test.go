package gatt

import "testing"

func TestUUIDString(t *testing.T) {
	tests := []struct {
		u    UUID
		want string
	}{
		{UUID16(0x2902), "0x2902"},
		{UUID{0x78, 0x56, 0x34, 0x12}, "0x12345678"},
		{UUID128(0x180f), "0000180f-0000-1000-8000-00805f9b34fb"},
	}
	for _, tt := range tests {
		if got := tt.u.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestUUIDShort(t *testing.T) {
	if v, ok := UUID128(0x2bc6).Short(); !ok || v != 0x2bc6 {
		t.Errorf("Short() = 0x%04X, %v, want 0x2BC6, true", v, ok)
	}

	vendor := UUID128(0x2bc6)
	vendor[0] ^= 0x01
	if _, ok := vendor.Short(); ok {
		t.Error("Short() accepted a non-base 128-bit UUID")
	}
	if !UUID16(0x2bc6).Equal(UUID128(0x2bc6)) {
		t.Error("16-bit and base 128-bit forms should be equal")
	}
	if UUID16(0x2bc6).Equal(vendor) {
		t.Error("16-bit UUID equal to vendor UUID")
	}
}

func TestParseUUID(t *testing.T) {
	u, err := ParseUUID("2803")
	if err != nil {
		t.Fatalf("ParseUUID failed: %v", err)
	}
	if !u.Equal(UUIDCharacteristic) {
		t.Errorf("ParseUUID(2803) = %v", u)
	}

	u, err = ParseUUID("00002bc4-0000-1000-8000-00805f9b34fb")
	if err != nil {
		t.Fatalf("ParseUUID failed: %v", err)
	}
	if len(u) != 2 {
		t.Errorf("Base UUID not reduced to 16-bit form: %v", u)
	}
	if u.Name() != "Sink ASE" {
		t.Errorf("Name() = %s, want Sink ASE", u.Name())
	}

	u, err = ParseUUID("a6ed0201-d344-460a-8075-b9e8ec90d71b")
	if err != nil {
		t.Fatalf("ParseUUID failed: %v", err)
	}
	if u.String() != "a6ed0201-d344-460a-8075-b9e8ec90d71b" {
		t.Errorf("String() = %s", u.String())
	}
	if u.Name() != "Vendor specific" {
		t.Errorf("Name() = %s, want Vendor specific", u.Name())
	}

	if _, err := ParseUUID("zz"); err == nil {
		t.Error("ParseUUID(zz) succeeded")
	}
}

func TestNames(t *testing.T) {
	if got := UUID16Name(0x2902); got != "Client Characteristic Configuration" {
		t.Errorf("UUID16Name(0x2902) = %s", got)
	}
	if got := UUID16Name(0xfffe); got != "Unknown" {
		t.Errorf("UUID16Name(0xfffe) = %s", got)
	}
	if got := CompanyName(0x004c); got != "Apple, Inc." {
		t.Errorf("CompanyName(0x004c) = %s", got)
	}
	if got := CompanyName(0xfff0); got != "not assigned" {
		t.Errorf("CompanyName(0xfff0) = %s", got)
	}
}
