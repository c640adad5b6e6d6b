package metadata

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMinimalEXIF writes a little-endian TIFF whose EXIF sub-IFD holds a
// single DateTimeOriginal of 2023:04:06 17:50:47.
func writeMinimalEXIF(t *testing.T, path string) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("II*\x00")                // little-endian TIFF magic
	buf.Write([]byte{0x08, 0x00, 0x00, 0x00}) // IFD0 at byte 8

	// IFD0: one entry pointing at the EXIF sub-IFD
	buf.Write([]byte{0x01, 0x00})             // entry count
	buf.Write([]byte{0x69, 0x87, 0x04, 0x00}) // ExifIFDPointer, LONG
	buf.Write([]byte{0x01, 0x00, 0x00, 0x00}) // one value
	buf.Write([]byte{0x1A, 0x00, 0x00, 0x00}) // sub-IFD at byte 26
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00}) // no next IFD

	// EXIF sub-IFD: one DateTimeOriginal entry
	buf.Write([]byte{0x01, 0x00})             // entry count
	buf.Write([]byte{0x03, 0x90, 0x02, 0x00}) // DateTimeOriginal, ASCII
	buf.Write([]byte{0x14, 0x00, 0x00, 0x00}) // 20 bytes long
	buf.Write([]byte{0x2C, 0x00, 0x00, 0x00}) // value at byte 44
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00}) // no next IFD

	buf.WriteString("2023:04:06 17:50:47\x00")

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestReader_CaptureTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG_0001.tif")
	writeMinimalEXIF(t, path)

	r := NewReader()

	taken, err := r.CaptureTime(context.Background(), path)
	require.NoError(t, err, "a well-formed DateTimeOriginal should be read")
	assert.Equal(t, time.Date(2023, time.April, 6, 17, 50, 47, 0, time.UTC), taken)
}

func TestReader_CaptureTime_MissingFile(t *testing.T) {
	r := NewReader()

	_, err := r.CaptureTime(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening image")
	assert.NotErrorIs(t, err, ErrNoCaptureTime, "an access failure is not a metadata gap")
}

func TestReader_CaptureTime_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.jpg")
	require.NoError(t, os.WriteFile(path, []byte("plain text, no EXIF here"), 0o644))

	r := NewReader()

	_, err := r.CaptureTime(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCaptureTime)
}

func TestReader_CaptureTime_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	r := NewReader()

	_, err := r.CaptureTime(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCaptureTime)
}
