package gatt

// Assigned numbers used for display. The tables cover the attribute types a
// GATT database commonly holds plus the audio profiles decoded here.
var uuid16Names = map[uint16]string{
	0x1800: "Generic Access Profile",
	0x1801: "Generic Attribute Profile",
	0x180a: "Device Information",
	0x180f: "Battery Service",
	0x1812: "Human Interface Device",
	0x1844: "Volume Control",
	0x1845: "Volume Offset Control",
	0x1846: "Coordinated Set Identification",
	0x184e: "Audio Stream Control",
	0x184f: "Broadcast Audio Scan",
	0x1850: "Published Audio Capabilities",
	0x1851: "Basic Audio Announcement",
	0x1852: "Broadcast Audio Announcement",
	0x1853: "Common Audio",
	0x1855: "Telephony and Media Audio",

	0x2800: "Primary Service",
	0x2801: "Secondary Service",
	0x2802: "Include",
	0x2803: "Characteristic",

	0x2900: "Characteristic Extended Properties",
	0x2901: "Characteristic User Description",
	0x2902: "Client Characteristic Configuration",
	0x2903: "Server Characteristic Configuration",
	0x2904: "Characteristic Format",
	0x2905: "Characteristic Aggregate Format",

	0x2a00: "Device Name",
	0x2a01: "Appearance",
	0x2a04: "Peripheral Preferred Connection Parameters",
	0x2a05: "Service Changed",
	0x2a19: "Battery Level",
	0x2a24: "Model Number String",
	0x2a29: "Manufacturer Name String",
	0x2aa6: "Central Address Resolution",
	0x2b29: "Client Supported Features",
	0x2b2a: "Database Hash",
	0x2b3a: "Server Supported Features",
	0x2b7d: "Volume State",
	0x2b7e: "Volume Control Point",
	0x2b7f: "Volume Flags",

	0x2bc4: "Sink ASE",
	0x2bc5: "Source ASE",
	0x2bc6: "ASE Control Point",
	0x2bc7: "Broadcast Audio Scan Control Point",
	0x2bc8: "Broadcast Receive State",
	0x2bc9: "Sink PAC",
	0x2bca: "Sink Audio Locations",
	0x2bcb: "Source PAC",
	0x2bcc: "Source Audio Locations",
	0x2bcd: "Available Audio Contexts",
	0x2bce: "Supported Audio Contexts",
}

var companyNames = map[uint16]string{
	0x0000: "Ericsson Technology Licensing",
	0x0002: "Intel Corp.",
	0x0006: "Microsoft",
	0x000a: "Qualcomm Technologies International, Ltd. (QTIL)",
	0x000d: "Texas Instruments Inc.",
	0x000f: "Broadcom Corporation",
	0x001d: "Qualcomm",
	0x0046: "MediaTek, Inc.",
	0x004c: "Apple, Inc.",
	0x0059: "Nordic Semiconductor ASA",
	0x0075: "Samsung Electronics Co. Ltd.",
	0x00e0: "Google",
	0x05f1: "The Linux Foundation",
}

// UUID16Name returns the assigned name of a 16-bit UUID
func UUID16Name(v uint16) string {
	if name, ok := uuid16Names[v]; ok {
		return name
	}
	return "Unknown"
}

// UUID32Name returns the assigned name of a 32-bit UUID. Values that fit in
// 16 bits share the 16-bit table.
func UUID32Name(v uint32) string {
	if v <= 0xffff {
		return UUID16Name(uint16(v))
	}
	return "Unknown"
}

// CompanyName returns the assigned name of a company identifier
func CompanyName(id uint16) string {
	if name, ok := companyNames[id]; ok {
		return name
	}
	return "not assigned"
}
