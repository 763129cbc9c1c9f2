package uxn

// deviceNames maps the high nibble of a device port to the Varvara device name.
var deviceNames = [16]string{
	"system", "console", "screen", "audio0",
	"audio1", "audio2", "audio3", "midi",
	"controller", "mouse", "file0", "file1",
	"datetime", "reserved-d", "reserved-e", "reserved-f",
}

// DeviceName returns the name of the device that the port belongs to.
func DeviceName(port byte) string {
	return deviceNames[port>>4]
}

// IsVectorPort returns whether the port is the vector slot of its device.
func IsVectorPort(port byte) bool {
	return port&0x0f == 0
}
