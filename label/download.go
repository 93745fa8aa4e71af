//Package label fetches and serves the PDF labels issued by the
//SoColissimo letter service.
package label

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cavaliercoder/grab"
	log "github.com/go-kit/kit/log"
)

// Label is a downloaded shipping document.
type Label struct {
	ParcelNumber string
	FileName     string
	LocalPath    string
}

// Downloader saves label PDFs into a work folder.
type Downloader struct {
	folder string
	logger log.Logger
}

// NewDownloader creates a Downloader storing PDFs in folder.
func NewDownloader(folder string, logger log.Logger) *Downloader {
	return &Downloader{folder: folder, logger: logger}
}

// Fetch downloads the label PDF from pdfURL into the work folder.
// The remote keeps letters only for a short while, so an already
// downloaded file is not fetched again.
func (d *Downloader) Fetch(ctx context.Context, parcelNumber, pdfURL string) (*Label, error) {
	loader := grab.NewClient()
	dst := filepath.Join(d.folder, fmt.Sprintf("%s.pdf", parcelNumber))
	req, err := grab.NewRequest(dst, pdfURL)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.SkipExisting = true
	req.NoResume = true

	resp := loader.Do(req)
	//waite till complete
	if err := resp.Err(); err != nil {
		return nil, err
	}
	if d.logger != nil {
		d.logger.Log("parcel", parcelNumber, "saved", resp.Filename)
	}
	return &Label{
		ParcelNumber: parcelNumber,
		FileName:     filepath.Base(resp.Filename),
		LocalPath:    resp.Filename,
	}, nil
}
