package entry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

type ReplayHandler func(*Record) error

var errCorruptRecord = errors.New("corrupt wal record")

// Replay streams every record in the directory in segment order and
// returns the last sequence seen. Sequences must be strictly
// monotonic across segments.
//
// A torn frame at the tail of the newest segment is the normal
// artifact of crashing mid-append. The intact prefix is recovered and
// the tail is cut so the next append starts on a frame boundary.
// Damage anywhere else is unrecoverable and fails the replay.
func Replay(dir string, fn ReplayHandler) (lastSeq uint64, err error) {
	files, err := segmentFiles(dir)
	if err != nil {
		return 0, err
	}

	for i, path := range files {
		lastSeq, err = replaySegment(path, i == len(files)-1, lastSeq, fn)
		if err != nil {
			return lastSeq, err
		}
	}

	return lastSeq, nil
}

func replaySegment(path string, newest bool, lastSeq uint64, fn ReplayHandler) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return lastSeq, err
	}
	defer f.Close()

	var offset int64
	for {
		rec, n, err := readRecord(f)
		if err == io.EOF {
			return lastSeq, nil
		}
		if err != nil {
			if newest && (errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, errCorruptRecord)) {
				return lastSeq, os.Truncate(path, offset)
			}
			return lastSeq, err
		}

		if rec.Seq <= lastSeq {
			return lastSeq, fmt.Errorf("non-monotonic seq %d in %s", rec.Seq, path)
		}
		lastSeq = rec.Seq
		offset += n

		if err := fn(rec); err != nil {
			return lastSeq, err
		}
	}
}

// readRecord decodes one frame and reports how many bytes it spanned.
// io.EOF means a clean end; io.ErrUnexpectedEOF means the frame was
// cut mid-write.
func readRecord(r io.Reader) (*Record, int64, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, 0, err
	}

	t := RecordType(header[0])
	seq := binary.BigEndian.Uint64(header[1:9])
	ts := binary.BigEndian.Uint64(header[9:17])
	l := binary.BigEndian.Uint32(header[17:21])

	data := make([]byte, l+4)
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, 0, err
	}

	payload := data[:l]
	crc := binary.BigEndian.Uint32(data[l:])

	if !CRC32Valid(append(header, payload...), crc) {
		return nil, 0, fmt.Errorf("%w: crc mismatch at seq %d", errCorruptRecord, seq)
	}

	return &Record{
		Type: t,
		Seq:  seq,
		Time: int64(ts),
		Data: payload,
	}, int64(headerSize) + int64(l) + 4, nil
}
