package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"medconnect/internal/pkg/errs"
)

// 1x1 transparent PNG.
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func pngBytes(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(pixelPNG)
	require.NoError(t, err)
	return data
}

func TestDetectImage(t *testing.T) {
	data := pngBytes(t)

	mimeType, ext, customErr := DetectImage(bytes.NewReader(data), int64(len(data)))
	require.Nil(t, customErr)
	require.Equal(t, "image/png", mimeType)
	require.Equal(t, ".png", ext)

	text := []byte("plain text pretending to be a picture")
	_, _, customErr = DetectImage(bytes.NewReader(text), int64(len(text)))
	require.NotNil(t, customErr)
	require.Equal(t, errs.ErrFileTypeInvalid, customErr.Code)

	_, _, customErr = DetectImage(bytes.NewReader(data), MaxImageSize+1)
	require.NotNil(t, customErr)
	require.Equal(t, errs.ErrFileSizeTooLarge, customErr.Code)
}

func TestStoreImage(t *testing.T) {
	ctx := context.Background()
	store, err := newDiskStore(t.TempDir())
	require.NoError(t, err)

	data := pngBytes(t)
	key, customErr := StoreImage(ctx, store, ProfileImagePrefix, bytes.NewReader(data), int64(len(data)))
	require.Nil(t, customErr)
	require.True(t, strings.HasPrefix(key, ProfileImagePrefix+"/"))
	require.True(t, strings.HasSuffix(key, ".png"))

	rc, _, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	stored, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, data, stored, "sniffing must not consume the body")
}
