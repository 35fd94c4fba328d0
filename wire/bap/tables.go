package bap

import "github.com/user/attmon/wire/att"

// Audio Stream Endpoint states (ASCS 4.1)
const (
	StateIdle            = 0x00
	StateCodecConfigured = 0x01
	StateQoSConfigured   = 0x02
	StateEnabling        = 0x03
	StateStreaming       = 0x04
	StateDisabling       = 0x05
	StateReleasing       = 0x06
)

// ASE Control Point opcodes (ASCS 5)
const (
	OpConfigCodec    = 0x01
	OpConfigQoS      = 0x02
	OpEnable         = 0x03
	OpStartReady     = 0x04
	OpDisable        = 0x05
	OpStopReady      = 0x06
	OpUpdateMetadata = 0x07
	OpRelease        = 0x08
)

// LC3 codec specific capability types (Assigned Numbers 6.12.4)
const (
	CapSamplingFrequencies  = 0x01
	CapFrameDurations       = 0x02
	CapChannelCounts        = 0x03
	CapFrameLength          = 0x04
	CapMaxCodecFramesPerSDU = 0x05
)

// LC3 codec specific configuration types (Assigned Numbers 6.12.5)
const (
	CfgSamplingFrequency = 0x01
	CfgFrameDuration     = 0x02
	CfgChannelAllocation = 0x03
	CfgFrameLength       = 0x04
	CfgFrameBlocks       = 0x05
)

var codecNames = map[uint8]string{
	0x00: "u-law log",
	0x01: "A-law log",
	0x02: "CVSD",
	0x03: "Transparent",
	0x04: "Linear PCM",
	0x05: "mSBC",
	0x06: "LC3",
	0xff: "Vendor specific",
}

var contextBits = att.Bitfield{Width: 16, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "Unspecified"},
	{Bit: 1, Label: "Conversational"},
	{Bit: 2, Label: "Media"},
	{Bit: 3, Label: "Game"},
	{Bit: 4, Label: "Instructional"},
	{Bit: 5, Label: "Voice Assistants"},
	{Bit: 6, Label: "Live"},
	{Bit: 7, Label: "Sound Effects"},
	{Bit: 8, Label: "Notifications"},
	{Bit: 9, Label: "Ringtone"},
	{Bit: 10, Label: "Alerts"},
	{Bit: 11, Label: "Emergency alarm"},
	{Bit: 12, Label: "RFU"},
	{Bit: 13, Label: "RFU"},
	{Bit: 14, Label: "RFU"},
	{Bit: 15, Label: "RFU"},
}}

var frequencyBits = att.Bitfield{Width: 16, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "8 Khz"},
	{Bit: 1, Label: "11.25 Khz"},
	{Bit: 2, Label: "16 Khz"},
	{Bit: 3, Label: "22.05 Khz"},
	{Bit: 4, Label: "24 Khz"},
	{Bit: 5, Label: "32 Khz"},
	{Bit: 6, Label: "44.1 Khz"},
	{Bit: 7, Label: "48 Khz"},
	{Bit: 8, Label: "88.2 Khz"},
	{Bit: 9, Label: "96 Khz"},
	{Bit: 10, Label: "176.4 Khz"},
	{Bit: 11, Label: "192 Khz"},
	{Bit: 12, Label: "384 Khz"},
	{Bit: 13, Label: "RFU"},
	{Bit: 14, Label: "RFU"},
	{Bit: 15, Label: "RFU"},
}}

var durationBits = att.Bitfield{Width: 8, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "7.5 ms"},
	{Bit: 1, Label: "10 ms"},
	{Bit: 2, Label: "RFU"},
	{Bit: 3, Label: "RFU"},
	{Bit: 4, Label: "7.5 ms preferred"},
	{Bit: 5, Label: "10 ms preferred"},
	{Bit: 6, Label: "RFU"},
	{Bit: 7, Label: "RFU"},
}}

var channelCountBits = att.Bitfield{Width: 8, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "1 channel"},
	{Bit: 1, Label: "2 channels"},
	{Bit: 2, Label: "3 channels"},
	{Bit: 3, Label: "4 channels"},
	{Bit: 4, Label: "5 channels"},
	{Bit: 5, Label: "6 channels"},
	{Bit: 6, Label: "7 channels"},
	{Bit: 7, Label: "8 channels"},
}}

var locationBits = att.Bitfield{Width: 32, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "Front Left"},
	{Bit: 1, Label: "Front Right"},
	{Bit: 2, Label: "Front Center"},
	{Bit: 3, Label: "Low Frequency Effects 1"},
	{Bit: 4, Label: "Back Left"},
	{Bit: 5, Label: "Back Right"},
	{Bit: 6, Label: "Front Left of Center"},
	{Bit: 7, Label: "Front Right of Center"},
	{Bit: 8, Label: "Back Center"},
	{Bit: 9, Label: "Low Frequency Effects 2"},
	{Bit: 10, Label: "Side Left"},
	{Bit: 11, Label: "Side Right"},
	{Bit: 12, Label: "Top Front Left"},
	{Bit: 13, Label: "Top Front Right"},
	{Bit: 14, Label: "Top Front Center"},
	{Bit: 15, Label: "Top Center"},
	{Bit: 16, Label: "Top Back Left"},
	{Bit: 17, Label: "Top Back Right"},
	{Bit: 18, Label: "Top Side Left"},
	{Bit: 19, Label: "Top Side Right"},
	{Bit: 20, Label: "Top Back Center"},
	{Bit: 21, Label: "Bottom Front Center"},
	{Bit: 22, Label: "Bottom Front Left"},
	{Bit: 23, Label: "Bottom Front Right"},
	{Bit: 24, Label: "Front Left Wide"},
	{Bit: 25, Label: "Front Right Wide"},
	{Bit: 26, Label: "Left Surround"},
	{Bit: 27, Label: "Right Surround"},
	{Bit: 28, Label: "RFU"},
	{Bit: 29, Label: "RFU"},
	{Bit: 30, Label: "RFU"},
	{Bit: 31, Label: "RFU"},
}}

var preferredPHYBits = att.Bitfield{Width: 8, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "LE 1M PHY preferred"},
	{Bit: 1, Label: "LE 2M PHY preferred"},
	{Bit: 2, Label: "LE Codec PHY preferred"},
}}

var phyBits = att.Bitfield{Width: 8, Entries: []att.BitfieldEntry{
	{Bit: 0, Label: "LE 1M PHY"},
	{Bit: 1, Label: "LE 2M PHY"},
	{Bit: 2, Label: "LE Codec PHY"},
}}

var preferredFraming = map[uint8]string{
	0x00: "Unframed PDUs supported",
	0x01: "Unframed PDUs not supported",
}

var framing = map[uint8]string{
	0x00: "Unframed",
	0x01: "Framed",
}

var targetLatency = map[uint8]string{
	0x01: "Low Latency",
	0x02: "Balance Latency/Reliability",
	0x03: "High Reliability",
}

var samplingFrequencies = map[uint8]string{
	0x01: "8 Khz",
	0x02: "11.25 Khz",
	0x03: "16 Khz",
	0x04: "22.05 Khz",
	0x05: "24 Khz",
	0x06: "32 Khz",
	0x07: "44.1 Khz",
	0x08: "48 Khz",
	0x09: "88.2 Khz",
	0x0a: "96 Khz",
	0x0b: "176.4 Khz",
	0x0c: "192 Khz",
	0x0d: "384 Khz",
}

var frameDurations = map[uint8]string{
	0x00: "7.5 ms",
	0x01: "10 ms",
}

var responseCodes = map[uint8]string{
	0x00: "Success",
	0x01: "Unsupported Opcode",
	0x02: "Invalid Length",
	0x03: "Invalid ASE ID",
	0x04: "Invalid ASE State",
	0x05: "Invalid ASE Direction",
	0x06: "Unsupported Audio Capabilities",
	0x07: "Unsupported Configuration",
	0x08: "Rejected Configuration",
	0x09: "Invalid Configuration",
	0x0a: "Unsupported Metadata",
	0x0b: "Rejected Metadata",
	0x0c: "Invalid Metadata",
	0x0d: "Insufficient Resources",
	0x0e: "Unspecified Error",
}

var responseReasons = map[uint8]string{
	0x00: "None",
	0x01: "ASE ID",
	0x02: "Codec Specific Configuration",
	0x03: "SDU Interval",
	0x04: "Framing",
	0x05: "PHY",
	0x06: "Max SDU",
	0x07: "RTN",
	0x08: "Max Transport Latency",
	0x09: "Presentation Delay",
	0x0a: "Invalid ASE/CIS Mapping",
}
