package vo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/data/clip.mp4", "mp4", true},
		{"/data/archive.tar.gz", "gz", true},
		{"/data/README", "", false},
		{"/data/.bashrc", "", false},
		{"/data/.hidden.jpg", "jpg", true},
		{"/data/trailing.", "", false},
		{"/data/dir.d/noext", "", false},
		{"photo.JPG", "JPG", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Extension(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtensionSet_Matches(t *testing.T) {
	set := NewExtensionSet("mp4", ".jpg", " ", "")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Matches("/d/a.mp4"))
	assert.True(t, set.Matches("/d/b.jpg"), "leading dot is stripped")
	assert.False(t, set.Matches("/d/c.MP4"), "match is case-sensitive")
	assert.False(t, set.Matches("/d/d.png"))
	assert.False(t, set.Matches("/d/mp4"), "no extension never matches")
	assert.Equal(t, "jpg,mp4", set.String())
}

func TestExtensionSet_EmptyMatchesNothing(t *testing.T) {
	set := NewExtensionSet()

	assert.True(t, set.IsEmpty())
	assert.False(t, set.Matches("/d/a.mp4"))
	assert.False(t, set.Matches("/d/noext"))
	assert.False(t, set.Contains(""))
}
