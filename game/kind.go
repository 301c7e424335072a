package game

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind
//go:generate go run golang.org/x/tools/cmd/stringer -type=State
//go:generate go run golang.org/x/tools/cmd/stringer -type=EndCause -linecomment

// Kind tags a block as money coming in or going out.
// The zero Kind marks an empty cell in grid snapshots.
type Kind uint8

const (
	Inflow Kind = iota + 1
	Outflow
)

// State is the controller's lifecycle position.
type State int

const (
	Idle State = iota
	Running
	Ended
)

// EndCause explains why a session reached Ended.
type EndCause int

const (
	CauseNone              EndCause = iota // none
	CauseStackTooHigh                      // stack too high
	CauseBalanceOutOfRange                 // balance out of range
	CauseTimeLimitExceeded                 // time limit exceeded
)
