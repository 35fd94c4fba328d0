package att

// ATT Opcodes (Bluetooth Core Spec v5.3 Vol 3, Part F, Section 3.4)
const (
	OpErrorResponse = 0x01

	OpExchangeMTURequest  = 0x02
	OpExchangeMTUResponse = 0x03

	OpFindInformationRequest  = 0x04
	OpFindInformationResponse = 0x05
	OpFindByTypeValueRequest  = 0x06
	OpFindByTypeValueResponse = 0x07

	OpReadByTypeRequest    = 0x08
	OpReadByTypeResponse   = 0x09
	OpReadRequest          = 0x0A
	OpReadResponse         = 0x0B
	OpReadBlobRequest      = 0x0C
	OpReadBlobResponse     = 0x0D
	OpReadMultipleRequest  = 0x0E
	OpReadMultipleResponse = 0x0F

	OpReadByGroupTypeRequest  = 0x10
	OpReadByGroupTypeResponse = 0x11

	OpWriteRequest  = 0x12
	OpWriteResponse = 0x13

	OpPrepareWriteRequest  = 0x16
	OpPrepareWriteResponse = 0x17
	OpExecuteWriteRequest  = 0x18
	OpExecuteWriteResponse = 0x19

	// Server-initiated
	OpHandleValueNotification = 0x1B
	OpHandleValueIndication   = 0x1D
	OpHandleValueConfirmation = 0x1E

	// EATT era additions (v5.2)
	OpReadMultipleVariableRequest     = 0x20
	OpReadMultipleVariableResponse    = 0x21
	OpHandleMultipleValueNotification = 0x23

	OpWriteCommand       = 0x52
	OpSignedWriteCommand = 0xD2
)

// SignatureLength is the size of the authentication signature trailing a
// Signed Write Command
const SignatureLength = 12

// OpcodeNames maps opcodes to display names
var OpcodeNames = map[uint8]string{
	OpErrorResponse:                   "Error Response",
	OpExchangeMTURequest:              "Exchange MTU Request",
	OpExchangeMTUResponse:             "Exchange MTU Response",
	OpFindInformationRequest:          "Find Information Request",
	OpFindInformationResponse:         "Find Information Response",
	OpFindByTypeValueRequest:          "Find By Type Value Request",
	OpFindByTypeValueResponse:         "Find By Type Value Response",
	OpReadByTypeRequest:               "Read By Type Request",
	OpReadByTypeResponse:              "Read By Type Response",
	OpReadRequest:                     "Read Request",
	OpReadResponse:                    "Read Response",
	OpReadBlobRequest:                 "Read Blob Request",
	OpReadBlobResponse:                "Read Blob Response",
	OpReadMultipleRequest:             "Read Multiple Request",
	OpReadMultipleResponse:            "Read Multiple Response",
	OpReadByGroupTypeRequest:          "Read By Group Type Request",
	OpReadByGroupTypeResponse:         "Read By Group Type Response",
	OpWriteRequest:                    "Write Request",
	OpWriteResponse:                   "Write Response",
	OpPrepareWriteRequest:             "Prepare Write Request",
	OpPrepareWriteResponse:            "Prepare Write Response",
	OpExecuteWriteRequest:             "Execute Write Request",
	OpExecuteWriteResponse:            "Execute Write Response",
	OpHandleValueNotification:         "Handle Value Notification",
	OpHandleValueIndication:           "Handle Value Indication",
	OpHandleValueConfirmation:         "Handle Value Confirmation",
	OpReadMultipleVariableRequest:     "Read Multiple Request Variable Length",
	OpReadMultipleVariableResponse:    "Read Multiple Response Variable Length",
	OpHandleMultipleValueNotification: "Handle Multiple Value Notification",
	OpWriteCommand:                    "Write Command",
	OpSignedWriteCommand:              "Signed Write Command",
}

// OpcodeName returns the display name of an opcode, or "Unknown"
func OpcodeName(opcode uint8) string {
	if name, ok := OpcodeNames[opcode]; ok {
		return name
	}
	return "Unknown"
}

// IsRequest returns true if the opcode represents a request that expects a response
func IsRequest(opcode uint8) bool {
	switch opcode {
	case OpExchangeMTURequest,
		OpFindInformationRequest,
		OpFindByTypeValueRequest,
		OpReadByTypeRequest,
		OpReadRequest,
		OpReadBlobRequest,
		OpReadMultipleRequest,
		OpReadMultipleVariableRequest,
		OpReadByGroupTypeRequest,
		OpWriteRequest,
		OpPrepareWriteRequest,
		OpExecuteWriteRequest,
		OpHandleValueIndication:
		return true
	default:
		return false
	}
}

// IsResponse returns true if the opcode represents a response
func IsResponse(opcode uint8) bool {
	switch opcode {
	case OpErrorResponse,
		OpExchangeMTUResponse,
		OpFindInformationResponse,
		OpFindByTypeValueResponse,
		OpReadByTypeResponse,
		OpReadResponse,
		OpReadBlobResponse,
		OpReadMultipleResponse,
		OpReadMultipleVariableResponse,
		OpReadByGroupTypeResponse,
		OpWriteResponse,
		OpPrepareWriteResponse,
		OpExecuteWriteResponse,
		OpHandleValueConfirmation:
		return true
	default:
		return false
	}
}

// IsCommand returns true if the opcode is a command (no response expected)
func IsCommand(opcode uint8) bool {
	switch opcode {
	case OpWriteCommand, OpSignedWriteCommand:
		return true
	default:
		return false
	}
}

// IsNotification returns true if the opcode is a notification (no confirmation expected)
func IsNotification(opcode uint8) bool {
	return opcode == OpHandleValueNotification || opcode == OpHandleMultipleValueNotification
}

// Class groups an opcode into request, response, command, notification or
// unknown. Used as a metrics label.
func Class(opcode uint8) string {
	switch {
	case IsRequest(opcode):
		return "request"
	case IsResponse(opcode):
		return "response"
	case IsCommand(opcode):
		return "command"
	case IsNotification(opcode):
		return "notification"
	default:
		return "unknown"
	}
}
