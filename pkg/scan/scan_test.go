package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByExtension(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		dirs   []string
		exts   []string
		ignore []string
		want   []string
	}{
		{
			name:  "single_extension_case_insensitive",
			files: []string{"a.jpg", "B.JPG", "c.mov", "d.txt"},
			exts:  []string{".jpg"},
			want:  []string{"B.JPG", "a.jpg"},
		},
		{
			name:  "multiple_extensions",
			files: []string{"a.jpg", "b.jpeg", "c.tif", "d.tiff", "e.png"},
			exts:  []string{".jpg", ".jpeg", ".tif", ".tiff"},
			want:  []string{"a.jpg", "b.jpeg", "c.tif", "d.tiff"},
		},
		{
			name:  "uppercase_configured_extension",
			files: []string{"a.jpg", "b.mov"},
			exts:  []string{".JPG"},
			want:  []string{"a.jpg"},
		},
		{
			name:  "jpeg_does_not_match_jpg",
			files: []string{"a.jpeg"},
			exts:  []string{".jpg"},
			want:  []string{},
		},
		{
			name:  "directory_with_matching_name_skipped",
			files: []string{"a.jpg"},
			dirs:  []string{"album.jpg"},
			exts:  []string{".jpg"},
			want:  []string{"a.jpg"},
		},
		{
			name:   "ignore_glob_drops_file",
			files:  []string{"a.jpg", "draft-b.jpg", "c.jpg"},
			exts:   []string{".jpg"},
			ignore: []string{"draft-*"},
			want:   []string{"a.jpg", "c.jpg"},
		},
		{
			name:  "no_matching_files",
			files: []string{"a.txt", "b.mov"},
			exts:  []string{".jpg"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
			}
			for _, name := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
			}

			got, err := ListByExtension(context.Background(), dir, tt.exts, tt.ignore)
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, filepath.Base(p))
			}
			assert.Equal(t, tt.want, names, "selected files")
		})
	}
}

func TestListByExtension_UnreadableDirectory(t *testing.T) {
	got, err := ListByExtension(context.Background(), filepath.Join(t.TempDir(), "missing"), []string{".jpg"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading directory")
	assert.Empty(t, got, "a failed listing must select nothing")
}

func TestFilterUnnamed(t *testing.T) {
	prefixes := []string{"IMG_", "img_", "Img_"}

	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "canonical_names_dropped",
			paths: []string{"IMG_20230406_175047.jpg", "IMG_0001.jpg"},
			want:  []string{"IMG_0001.jpg"},
		},
		{
			name:  "collision_suffix_dropped",
			paths: []string{"IMG_20230406_175047-1.jpg", "holiday.jpg"},
			want:  []string{"holiday.jpg"},
		},
		{
			name:  "lowercase_prefix_dropped",
			paths: []string{"img_20230406_175047.jpg", "DSC_0001.jpg"},
			want:  []string{"DSC_0001.jpg"},
		},
		{
			name:  "timestamp_without_prefix_kept",
			paths: []string{"20230406_175047.jpg"},
			want:  []string{"20230406_175047.jpg"},
		},
		{
			name:  "all_already_named",
			paths: []string{"IMG_20230406_175047.jpg", "Img_20230406_175048.tif"},
			want:  []string{},
		},
		{
			name:  "full_paths_keep_directory",
			paths: []string{filepath.Join("some", "dir", "IMG_0001.jpg")},
			want:  []string{filepath.Join("some", "dir", "IMG_0001.jpg")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUnnamed(tt.paths, prefixes)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
