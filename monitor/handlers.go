package monitor

import (
	"github.com/user/attmon/wire/att"
	"github.com/user/attmon/wire/bap"
	"github.com/user/attmon/wire/gatt"
)

// attrHandler holds the value decoders of one attribute type. Any of them may
// be nil.
type attrHandler struct {
	UUID   gatt.UUID
	Read   att.DecodeFunc
	Write  att.DecodeFunc
	Notify att.DecodeFunc
}

var attrHandlers = []attrHandler{
	{gatt.UUIDClientCharacteristicConfig, gatt.DecodeCCC, gatt.DecodeCCC, nil},
	{gatt.UUID16(0x2bc4), bap.DecodeASEStatus, nil, bap.DecodeASEStatus},
	{gatt.UUID16(0x2bc5), bap.DecodeASEStatus, nil, bap.DecodeASEStatus},
	{gatt.UUID16(0x2bc6), nil, bap.DecodeControlPointCommand, bap.DecodeControlPointResponse},
	{gatt.UUID16(0x2bc9), bap.DecodePAC, nil, bap.DecodePAC},
	{gatt.UUID16(0x2bca), bap.DecodeLocation, nil, bap.DecodeLocation},
	{gatt.UUID16(0x2bcb), bap.DecodePAC, nil, bap.DecodePAC},
	{gatt.UUID16(0x2bcc), bap.DecodeLocation, nil, bap.DecodeLocation},
	{gatt.UUID16(0x2bcd), bap.DecodeContexts, nil, bap.DecodeContexts},
	{gatt.UUID16(0x2bce), bap.DecodeContexts, nil, bap.DecodeContexts},
}

// handlerFor returns the decoders registered for an attribute type, or nil
func handlerFor(t gatt.UUID) *attrHandler {
	for i := range attrHandlers {
		if attrHandlers[i].UUID.Equal(t) {
			return &attrHandlers[i]
		}
	}
	return nil
}
