package rename

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yl-teng/PhotoRename/pkg/metadata"
)

// fakeReader serves capture times from a map keyed by path. Unknown paths
// report a missing capture time, like a file with no EXIF block.
type fakeReader struct {
	times map[string]time.Time
}

func (f *fakeReader) CaptureTime(_ context.Context, path string) (time.Time, error) {
	if t, ok := f.times[path]; ok {
		return t, nil
	}
	return time.Time{}, metadata.ErrNoCaptureTime
}

func TestNew_RequiresMetadataReader(t *testing.T) {
	_, err := New(nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata reader is required")
}

func TestResolver_ByTimestamp(t *testing.T) {
	captureTime := time.Date(2023, time.April, 6, 17, 50, 47, 0, time.UTC)

	tests := []struct {
		name     string
		source   string
		existing []string
		want     string
	}{
		{
			name:   "bare_timestamp_name",
			source: "photo.jpg",
			want:   "IMG_20230406_175047.jpg",
		},
		{
			name:   "extension_case_preserved",
			source: "photo.JPG",
			want:   "IMG_20230406_175047.JPG",
		},
		{
			name:     "bare_name_taken",
			source:   "photo.jpg",
			existing: []string{"IMG_20230406_175047.jpg"},
			want:     "IMG_20230406_175047-1.jpg",
		},
		{
			name:   "suffix_chain_extends",
			source: "photo.jpg",
			existing: []string{
				"IMG_20230406_175047.jpg",
				"IMG_20230406_175047-1.jpg",
			},
			want: "IMG_20230406_175047-2.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			source := filepath.Join(dir, tt.source)
			require.NoError(t, os.WriteFile(source, []byte("img"), 0o644))
			for _, name := range tt.existing {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
			}

			r, err := New(&fakeReader{times: map[string]time.Time{source: captureTime}}, false)
			require.NoError(t, err)

			got, err := r.ByTimestamp(context.Background(), source, "IMG_")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.want), got)

			assert.NoFileExists(t, source, "source name must be gone after the rename")
			assert.FileExists(t, got)
		})
	}
}

func TestResolver_ByTimestamp_SameSecondBurst(t *testing.T) {
	dir := t.TempDir()
	captureTime := time.Date(2023, time.April, 6, 17, 50, 47, 0, time.UTC)

	sources := []string{"a.jpg", "b.jpg", "c.jpg"}
	times := make(map[string]time.Time, len(sources))
	for _, name := range sources {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
		times[path] = captureTime
	}

	r, err := New(&fakeReader{times: times}, false)
	require.NoError(t, err)

	var got []string
	for _, name := range sources {
		newPath, err := r.ByTimestamp(context.Background(), filepath.Join(dir, name), "IMG_")
		require.NoError(t, err)
		got = append(got, filepath.Base(newPath))
	}

	assert.Equal(t, []string{
		"IMG_20230406_175047.jpg",
		"IMG_20230406_175047-1.jpg",
		"IMG_20230406_175047-2.jpg",
	}, got, "suffixes must cover 0..N-1 with no gaps")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, got, names)
}

func TestResolver_ByTimestamp_NoCaptureTime(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "scan.jpg")
	require.NoError(t, os.WriteFile(source, []byte("img"), 0o644))

	r, err := New(&fakeReader{}, false)
	require.NoError(t, err)

	_, err = r.ByTimestamp(context.Background(), source, "IMG_")
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrNoCaptureTime)
	assert.FileExists(t, source, "file without a timestamp must stay untouched")
}

func TestResolver_DryRun_CollisionsMatchRealRun(t *testing.T) {
	dir := t.TempDir()
	captureTime := time.Date(2023, time.April, 6, 17, 50, 47, 0, time.UTC)

	pathA := filepath.Join(dir, "a.jpg")
	pathB := filepath.Join(dir, "b.jpg")
	require.NoError(t, os.WriteFile(pathA, []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte("img"), 0o644))

	r, err := New(&fakeReader{times: map[string]time.Time{
		pathA: captureTime,
		pathB: captureTime,
	}}, true)
	require.NoError(t, err)

	first, err := r.ByTimestamp(context.Background(), pathA, "IMG_")
	require.NoError(t, err)
	second, err := r.ByTimestamp(context.Background(), pathB, "IMG_")
	require.NoError(t, err)

	assert.Equal(t, "IMG_20230406_175047.jpg", filepath.Base(first))
	assert.Equal(t, "IMG_20230406_175047-1.jpg", filepath.Base(second),
		"second file must see the first claim even though nothing was written")

	assert.FileExists(t, pathA, "dry run must not touch the disk")
	assert.FileExists(t, pathB, "dry run must not touch the disk")
	assert.NoFileExists(t, first)
}

func TestResolver_PairedClip(t *testing.T) {
	tests := []struct {
		name         string
		clip         string
		renamedImage string
		want         string
	}{
		{
			name:         "clip_follows_image_base",
			clip:         "holiday.MOV",
			renamedImage: "IMG_20230406_175047.JPG",
			want:         "IMG_20230406_175047.MOV",
		},
		{
			name:         "clip_extension_case_preserved",
			clip:         "holiday.mov",
			renamedImage: "IMG_20230406_175047.JPG",
			want:         "IMG_20230406_175047.mov",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			clip := filepath.Join(dir, tt.clip)
			renamedImage := filepath.Join(dir, tt.renamedImage)
			require.NoError(t, os.WriteFile(clip, []byte("mov"), 0o644))
			require.NoError(t, os.WriteFile(renamedImage, []byte("img"), 0o644))

			r, err := New(&fakeReader{}, false)
			require.NoError(t, err)

			got, err := r.PairedClip(context.Background(), clip, renamedImage)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.want), got)

			assert.NoFileExists(t, clip)
			assert.FileExists(t, got)
		})
	}
}

func TestResolver_PairedClip_DryRun(t *testing.T) {
	dir := t.TempDir()
	clip := filepath.Join(dir, "holiday.MOV")
	require.NoError(t, os.WriteFile(clip, []byte("mov"), 0o644))

	r, err := New(&fakeReader{}, true)
	require.NoError(t, err)

	got, err := r.PairedClip(context.Background(), clip, filepath.Join(dir, "IMG_20230406_175047.JPG"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "IMG_20230406_175047.MOV"), got)

	assert.FileExists(t, clip, "dry run must not touch the disk")
	assert.NoFileExists(t, got)
}

func TestResolver_PairedClip_MissingClip(t *testing.T) {
	dir := t.TempDir()

	r, err := New(&fakeReader{}, false)
	require.NoError(t, err)

	_, err = r.PairedClip(context.Background(),
		filepath.Join(dir, "gone.MOV"),
		filepath.Join(dir, "IMG_20230406_175047.JPG"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renaming")
}
