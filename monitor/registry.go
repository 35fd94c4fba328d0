package monitor

import (
	"github.com/user/attmon/report"
	"github.com/user/attmon/wire/att"
)

// pduFunc decodes the parameters of one ATT PDU. The opcode has already been
// consumed and the parameter length checked against the descriptor.
type pduFunc func(d *Dissector, f *att.Frame, r report.Sink)

// opcodeDesc describes how to decode one opcode. Size is the exact parameter
// length when Fixed is set and the minimum otherwise.
type opcodeDesc struct {
	Code   uint8
	Decode pduFunc
	Size   int
	Fixed  bool
}

// Name returns the display name of the opcode
func (o *opcodeDesc) Name() string {
	return att.OpcodeName(o.Code)
}

// check validates a parameter length against the size rule and returns the
// annotation to emit when it does not hold
func (o *opcodeDesc) check(n int) (string, bool) {
	if o.Fixed {
		if n != o.Size {
			return "invalid size", false
		}
		return "", true
	}
	if n < o.Size {
		return "too short packet", false
	}
	return "", true
}

// Read Multiple Response and Execute Write Response carry nothing worth
// decoding and are dumped raw.
var opcodeTable = []opcodeDesc{
	{att.OpErrorResponse, errorResponse, 4, true},
	{att.OpExchangeMTURequest, exchangeMTURequest, 2, true},
	{att.OpExchangeMTUResponse, exchangeMTUResponse, 2, true},
	{att.OpFindInformationRequest, findInfoRequest, 4, true},
	{att.OpFindInformationResponse, findInfoResponse, 5, false},
	{att.OpFindByTypeValueRequest, findByTypeValueRequest, 6, false},
	{att.OpFindByTypeValueResponse, findByTypeValueResponse, 4, false},
	{att.OpReadByTypeRequest, readByTypeRequest, 6, false},
	{att.OpReadByTypeResponse, readByTypeResponse, 3, false},
	{att.OpReadRequest, readRequest, 2, true},
	{att.OpReadResponse, readResponse, 0, false},
	{att.OpReadBlobRequest, readBlobRequest, 4, true},
	{att.OpReadBlobResponse, readBlobResponse, 0, false},
	{att.OpReadMultipleRequest, readMultipleRequest, 4, false},
	{att.OpReadMultipleResponse, nil, 0, false},
	{att.OpReadByGroupTypeRequest, readByGroupTypeRequest, 6, false},
	{att.OpReadByGroupTypeResponse, readByGroupTypeResponse, 4, false},
	{att.OpWriteRequest, writeRequest, 2, false},
	{att.OpWriteResponse, empty, 0, true},
	{att.OpPrepareWriteRequest, prepareWriteRequest, 4, false},
	{att.OpPrepareWriteResponse, prepareWriteResponse, 4, false},
	{att.OpExecuteWriteRequest, executeWriteRequest, 1, true},
	{att.OpExecuteWriteResponse, nil, 0, false},
	{att.OpHandleValueNotification, handleValueNotification, 2, false},
	{att.OpHandleValueIndication, handleValueNotification, 2, false},
	{att.OpHandleValueConfirmation, empty, 0, true},
	{att.OpReadMultipleVariableRequest, readMultipleRequest, 4, false},
	{att.OpReadMultipleVariableResponse, multipleValues, 4, false},
	{att.OpHandleMultipleValueNotification, multipleValues, 4, false},
	{att.OpWriteCommand, writeCommand, 2, false},
	{att.OpSignedWriteCommand, signedWriteCommand, 2 + att.SignatureLength, false},
}

var opcodes = make(map[uint8]*opcodeDesc, len(opcodeTable))

func init() {
	for i := range opcodeTable {
		opcodes[opcodeTable[i].Code] = &opcodeTable[i]
	}
}

func lookupOpcode(code uint8) *opcodeDesc {
	return opcodes[code]
}
