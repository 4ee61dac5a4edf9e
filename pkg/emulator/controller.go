package emulator

// Controller defines the interface contract for an emulator to implement
// in order for a front end to be able to control it. All methods must be
// called from the goroutine that runs the emulator.
type Controller interface {
	SendCommand(CommandPacket) ResponsePacket
	Status() Status
}
