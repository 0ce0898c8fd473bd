package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentbatch/internal/content"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		input   string
		want    content.ContentType
		wantErr bool
	}{
		{input: "blog", want: content.ContentTypeBlog},
		{input: "short-video", want: content.ContentTypeShortVideo},
		{input: "youtube-short", want: content.ContentTypeShortVideo},
		{input: " Instagram-Reel ", want: content.ContentTypeSocialReel},
		{input: "social-story", want: content.ContentTypeSocialStory},
		{input: "facebook-story", want: content.ContentTypeSocialStory},
		{input: "podcast", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := content.ParseContentType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, content.ErrUnknownContentType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentType_WireName(t *testing.T) {
	assert.Equal(t, "blog", content.ContentTypeBlog.WireName())
	assert.Equal(t, "youtube-short", content.ContentTypeShortVideo.WireName())
	assert.Equal(t, "instagram-reel", content.ContentTypeSocialReel.WireName())
	assert.Equal(t, "facebook-story", content.ContentTypeSocialStory.WireName())
	assert.False(t, content.ContentType("newsletter").Valid())
}

func TestAllContentTypes_ReturnsCopy(t *testing.T) {
	all := content.AllContentTypes()
	require.Len(t, all, 4)
	all[0] = "mutated"
	assert.Equal(t, content.ContentTypeBlog, content.AllContentTypes()[0])
}

func TestDefaultTypeFlags(t *testing.T) {
	f := content.DefaultTypeFlags()
	assert.Equal(t, 3, f.Count())
	assert.False(t, f.IsEnabled(content.ContentTypeSocialStory))
	assert.Equal(t, []content.ContentType{
		content.ContentTypeBlog,
		content.ContentTypeShortVideo,
		content.ContentTypeSocialReel,
	}, f.Enabled())
}

func TestTypeFlags_EnabledUsesCanonicalOrder(t *testing.T) {
	var f content.TypeFlags
	f.Set(content.ContentTypeSocialStory, true)
	f.Set(content.ContentTypeBlog, true)
	f.Toggle(content.ContentTypeShortVideo)

	assert.Equal(t, []content.ContentType{
		content.ContentTypeBlog,
		content.ContentTypeShortVideo,
		content.ContentTypeSocialStory,
	}, f.Enabled())

	assert.False(t, f.Toggle(content.ContentTypeShortVideo))
	assert.Equal(t, 2, f.Count())
}

func TestTypeFlags_IgnoresUnknown(t *testing.T) {
	var f content.TypeFlags
	f.Set("newsletter", true)
	assert.False(t, f.Toggle("newsletter"))
	assert.Zero(t, f.Count())
	assert.Empty(t, f.Enabled())
}

func TestParseTypeFlags(t *testing.T) {
	f, err := content.ParseTypeFlags([]string{"instagram-reel", "blog", "blog"})
	require.NoError(t, err)
	assert.Equal(t, []content.ContentType{content.ContentTypeBlog, content.ContentTypeSocialReel}, f.Enabled())

	_, err = content.ParseTypeFlags([]string{"blog", "fax"})
	require.ErrorIs(t, err, content.ErrUnknownContentType)
}

func TestTopic_Clone(t *testing.T) {
	orig := content.Topic{ID: "p1", Name: "SEO", Keywords: []string{"a", "b"}}
	c := orig.Clone()
	orig.Keywords[0] = "changed"
	assert.Equal(t, "a", c.Keywords[0])
	assert.Equal(t, "p1/blog", content.Task{Topic: c, Type: content.ContentTypeBlog}.Key())
}

func TestItem_JSONFlattensDraft(t *testing.T) {
	item := content.Item{
		ID:     "batch-1",
		Status: content.StatusPending,
		Draft:  content.Draft{Title: "Hello", Type: "blog"},
	}
	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Hello", decoded["title"])
	assert.Equal(t, "pending", decoded["status"])
}
