// Package capture reads and writes ATT captures stored as JSON Lines, one
// record per PDU or connection event.
package capture

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/user/attmon/wire/l2cap"
)

var (
	// ErrMalformedRecord is returned for lines that are not a valid record
	ErrMalformedRecord = errors.New("capture: malformed record")
	// ErrNotATT is returned for L2CAP frames on channels that cannot carry ATT
	ErrNotATT = errors.New("capture: not an ATT channel")
)

// Record events. PDU records leave Event empty.
const (
	EventConnect    = "connect"
	EventDisconnect = "disconnect"
)

// Record is the on-disk form of one capture line
type Record struct {
	Timestamp  string `json:"timestamp,omitempty"`
	Index      uint16 `json:"index"`
	Event      string `json:"event,omitempty"`
	Direction  string `json:"direction,omitempty"` // "tx" or "rx"
	ConnHandle Number `json:"conn_handle"`
	ChannelID  Number `json:"channel_id,omitempty"`
	Local      string `json:"local,omitempty"`
	Peer       string `json:"peer,omitempty"`
	RawHex     string `json:"raw_hex,omitempty"`   // ATT PDU, opcode first
	L2CAPHex   string `json:"l2cap_hex,omitempty"` // basic L2CAP frame
}

// Number is a 16-bit value written as a JSON number or as a decimal or 0x
// prefixed hex string
type Number uint16

// UnmarshalJSON accepts 64, "64" and "0x0040"
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return errors.Wrapf(err, "invalid 16-bit value %s", b)
	}
	*n = Number(v)
	return nil
}

// MarshalJSON writes the value as a hex string
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"0x%04x"`, uint16(n))), nil
}

// Packet is a decoded record
type Packet struct {
	Time    time.Time // zero when the record carries no timestamp
	Index   uint16
	Event   string
	In      bool
	Handle  uint16
	Channel uint16
	Local   string
	Peer    string
	Data    []byte // ATT PDU
}

// ParseRecord decodes one JSON line
func ParseRecord(line []byte) (*Packet, error) {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, errors.Wrapf(ErrMalformedRecord, "%v", err)
	}
	return rec.Packet()
}

// Packet validates the record and converts it
func (rec *Record) Packet() (*Packet, error) {
	p := &Packet{
		Index:   rec.Index,
		Event:   rec.Event,
		Handle:  uint16(rec.ConnHandle),
		Channel: uint16(rec.ChannelID),
		Local:   rec.Local,
		Peer:    rec.Peer,
	}

	if rec.Timestamp != "" {
		t, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "timestamp %q", rec.Timestamp)
		}
		p.Time = t
	}

	switch rec.Event {
	case EventConnect:
		if rec.Local == "" || rec.Peer == "" {
			return nil, errors.Wrap(ErrMalformedRecord, "connect without local and peer")
		}
		return p, nil
	case EventDisconnect:
		return p, nil
	case "":
	default:
		return nil, errors.Wrapf(ErrMalformedRecord, "unknown event %q", rec.Event)
	}

	switch rec.Direction {
	case "rx":
		p.In = true
	case "tx":
	default:
		return nil, errors.Wrapf(ErrMalformedRecord, "direction %q", rec.Direction)
	}

	switch {
	case rec.RawHex != "":
		data, err := hex.DecodeString(rec.RawHex)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "raw_hex: %v", err)
		}
		p.Data = data
		if p.Channel == 0 {
			p.Channel = l2cap.ChannelATT
		}
	case rec.L2CAPHex != "":
		frame, err := hex.DecodeString(rec.L2CAPHex)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "l2cap_hex: %v", err)
		}
		pkt, err := l2cap.Decode(frame)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "l2cap_hex: %v", err)
		}
		if !l2cap.CarriesATT(pkt.ChannelID) {
			return nil, errors.Wrapf(ErrNotATT, "channel 0x%04x", pkt.ChannelID)
		}
		p.Channel = pkt.ChannelID
		p.Data = pkt.Payload
	default:
		// an empty PDU is still a record; the dissector reports it
		p.Data = []byte{}
		if p.Channel == 0 {
			p.Channel = l2cap.ChannelATT
		}
	}
	return p, nil
}

// Record converts the packet back to its on-disk form, always as raw_hex
func (p *Packet) Record() Record {
	rec := Record{
		Index:      p.Index,
		Event:      p.Event,
		ConnHandle: Number(p.Handle),
		Local:      p.Local,
		Peer:       p.Peer,
	}
	if !p.Time.IsZero() {
		rec.Timestamp = p.Time.Format(time.RFC3339Nano)
	}
	if p.Event != "" {
		return rec
	}

	rec.Direction = "tx"
	if p.In {
		rec.Direction = "rx"
	}
	rec.ChannelID = Number(p.Channel)
	rec.RawHex = hex.EncodeToString(p.Data)
	return rec
}
