package journal

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/carverauto/journalgate/pkg/models"
)

// nullToken is the wire rendering of a null value.
const nullToken = "<NULL>"

// Buffer assembles the wire bytes for one record. It has exactly one owner
// and is reused across records via Reset; no field survives past the
// datagram it was written into.
type Buffer struct {
	data    []byte
	scratch []byte
}

// Reset clears the buffer for the next record, retaining its allocation.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// Len returns the encoded size so far.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the assembled datagram. The slice is invalidated by the
// next Reset or AppendField.
func (b *Buffer) Bytes() []byte { return b.data }

// AppendField sanitizes name and appends one encoded field. Values without
// an embedded newline use the single-line form NAME=VALUE\n; values
// containing a newline use the binary-safe form NAME\n<len:u64le><value>\n.
// The framing choice depends only on the bytes of the value passed in,
// never on what the buffer already holds. Collection values append nothing
// and return ErrInvalidFieldValue.
func (b *Buffer) AppendField(name string, value models.Value) error {
	val, err := appendValueBytes(b.scratch[:0], value)
	if err != nil {
		return err
	}

	b.scratch = val

	b.data = append(b.data, SanitizeFieldName(name)...)

	if bytes.IndexByte(val, '\n') < 0 {
		b.data = append(b.data, '=')
		b.data = append(b.data, val...)
	} else {
		b.data = append(b.data, '\n')
		b.data = binary.LittleEndian.AppendUint64(b.data, uint64(len(val)))
		b.data = append(b.data, val...)
	}

	b.data = append(b.data, '\n')

	return nil
}

// appendValueBytes renders a scalar value into its wire bytes. The switch
// is exhaustive over ValueKind so adding a kind forces a review here.
func appendValueBytes(dst []byte, v models.Value) ([]byte, error) {
	switch v.Kind {
	case models.KindBytes:
		return append(dst, v.Bytes...), nil
	case models.KindText:
		return append(dst, v.Text...), nil
	case models.KindInt:
		return strconv.AppendInt(dst, v.Int, 10), nil
	case models.KindFloat:
		return strconv.AppendFloat(dst, v.Float, 'g', -1, 64), nil
	case models.KindBool:
		return strconv.AppendBool(dst, v.Bool), nil
	case models.KindTime:
		return v.Time.AppendFormat(dst, time.RFC3339Nano), nil
	case models.KindNull:
		return append(dst, nullToken...), nil
	case models.KindList, models.KindMap:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFieldValue, v.Kind)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidFieldValue, v.Kind)
	}
}
