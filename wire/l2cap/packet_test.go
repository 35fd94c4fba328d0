package l2cap

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestDecode(t *testing.T) {
	p, err := Decode([]byte{0x03, 0x00, 0x04, 0x00, 0x0a, 0x03, 0x00, 0xff})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if p.ChannelID != ChannelATT {
		t.Errorf("ChannelID = 0x%04X, want 0x0004", p.ChannelID)
	}
	if !bytes.Equal(p.Payload, []byte{0x0a, 0x03, 0x00}) {
		t.Errorf("Payload = %x, want 0a0300", p.Payload)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte{0x01, 0x00}); errors.Cause(err) != ErrShortPacket {
		t.Errorf("Decode(short) error = %v, want ErrShortPacket", err)
	}
	if _, err := Decode([]byte{0x05, 0x00, 0x04, 0x00, 0x01}); errors.Cause(err) != ErrIncompletePacket {
		t.Errorf("Decode(incomplete) error = %v, want ErrIncompletePacket", err)
	}
}

func TestCarriesATT(t *testing.T) {
	tests := []struct {
		cid  uint16
		want bool
	}{
		{ChannelATT, true},
		{ChannelSMP, false},
		{ChannelLESignal, false},
		{0x0040, true},
		{0x0075, true},
	}
	for _, tt := range tests {
		if got := CarriesATT(tt.cid); got != tt.want {
			t.Errorf("CarriesATT(0x%04X) = %v, want %v", tt.cid, got, tt.want)
		}
	}
}
