package confetti

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	offsets []uint64
	writes  [][]byte
	err     error
}

func (w *recordingWriter) WriteUniforms(offset uint64, data []byte) error {
	if w.err != nil {
		return w.err
	}
	w.offsets = append(w.offsets, offset)
	w.writes = append(w.writes, append([]byte(nil), data...))
	return nil
}

func TestUniformsSize(t *testing.T) {
	assert.Equal(t, uint64(16), UniformsSize)
}

func TestUniformStateSetTime(t *testing.T) {
	w := &recordingWriter{}
	s := NewUniformState(w)

	for _, tm := range []float32{0, 0.016, 1.25, 2.5} {
		require.NoError(t, s.SetTime(tm))
		assert.Equal(t, tm, s.Time())
	}

	require.Len(t, w.writes, 4)
	for i, data := range w.writes {
		assert.Equal(t, uint64(0), w.offsets[i])
		assert.Len(t, data, int(UniformsSize))
	}
	last := math.Float32frombits(binary.LittleEndian.Uint32(w.writes[3][:4]))
	assert.Equal(t, float32(2.5), last)
}

func TestUniformStateWriteError(t *testing.T) {
	boom := errors.New("queue lost")
	s := NewUniformState(&recordingWriter{err: boom})
	err := s.SetTime(1)
	assert.ErrorIs(t, err, boom)
}
