package tir

// CatchTableEntry records that any throw inside the try block transfers
// control to the else block, placing the thrown value in CatchRegister.
type CatchTableEntry struct {
	TryBlock   int
	ElseBlock  int
	CatchRegister Register
}
