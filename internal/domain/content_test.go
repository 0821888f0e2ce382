package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModel(t *testing.T) {
	cases := []struct {
		name        string
		contentType ContentType
		key         string
		expected    string
		wantErr     bool
	}{
		{name: "image_default", contentType: ContentTypeImage, expected: "seedream-4"},
		{name: "video_default", contentType: ContentTypeVideo, expected: "ltx-video"},
		{name: "audio_default", contentType: ContentTypeAudio, expected: "lyria-2"},
		{name: "explicit_key", contentType: ContentTypeImage, key: "flux-dev", expected: "flux-dev"},
		{name: "key_of_other_type", contentType: ContentTypeAudio, key: "flux-dev", wantErr: true},
		{name: "unknown_type", contentType: "text", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ResolveModel(tc.contentType, tc.key)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.Key)
			assert.Equal(t, tc.contentType, m.Type)
		})
	}
}
