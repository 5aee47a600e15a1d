package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/infra/media"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func serveMedia(t *testing.T, key, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	require.NoError(t, bucket.WriteAll(context.Background(), key, data, &blob.WriterOptions{ContentType: contentType}))

	h := NewMediaHandler(MediaHandlerParams{Storage: media.NewBlobStorage(bucket, "")})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/media/"+key, nil), rec)
	c.SetParamNames("*")
	c.SetParamValues(key)

	require.NoError(t, h.Serve(c))

	return rec
}

func TestMediaHandler_ServesImages(t *testing.T) {
	rec := serveMedia(t, "avatars/a.png", "image/png", []byte("\x89PNG\r\n\x1a\n"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
}

func TestMediaHandler_NeverServesMarkup(t *testing.T) {
	for _, contentType := range []string{"text/html; charset=utf-8", "image/svg+xml", ""} {
		t.Run(contentType, func(t *testing.T) {
			rec := serveMedia(t, "avatars/evil.png", contentType, []byte("<script>alert(1)</script>"))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, echo.MIMEOctetStream, rec.Header().Get(echo.HeaderContentType))
			assert.Equal(t, "attachment", rec.Header().Get(echo.HeaderContentDisposition))
			assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
		})
	}
}

func TestDetectImageType(t *testing.T) {
	got, err := detectImageType(bytes.NewReader([]byte("\x89PNG\r\n\x1a\nrest")))
	require.NoError(t, err)
	assert.Equal(t, "image/png", got)

	jpeg := bytes.NewReader([]byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"))
	got, err = detectImageType(jpeg)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", got)
	pos, _ := jpeg.Seek(0, 1)
	assert.Zero(t, pos, "reader is rewound")

	for _, data := range []string{
		"<html><body>hi</body></html>",
		`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`,
		"plain text",
	} {
		_, err := detectImageType(bytes.NewReader([]byte(data)))
		assert.Error(t, err, data)
	}
}
