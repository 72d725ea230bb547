package entry

import "time"

// RecordType tags the command a frame carries.
type RecordType uint8

const (
	RecordPlace RecordType = iota
	RecordCancel
)

// headerSize is the fixed frame prefix: type, sequence, timestamp,
// payload length.
const headerSize = 1 + 8 + 8 + 4

// Record is one journaled command. Seq is the engine sequence the
// command was issued under and orders the whole log.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
