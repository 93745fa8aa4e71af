package label

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloaderFetch(t *testing.T) {
	content := "%PDF-1.4 fake label"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		io.WriteString(w, content)
	}))
	defer ts.Close()

	d := NewDownloader(t.TempDir(), nil)
	lbl, err := d.Fetch(context.Background(), "8R12345678901", ts.URL+"/letter.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "8R12345678901.pdf", lbl.FileName)

	data, err := ioutil.ReadFile(lbl.LocalPath)
	assert.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestDownloaderFetchBadURL(t *testing.T) {
	d := NewDownloader(t.TempDir(), nil)
	_, err := d.Fetch(context.Background(), "8R12345678901", "http://127.0.0.1:1/letter.pdf")
	assert.Error(t, err)
}
