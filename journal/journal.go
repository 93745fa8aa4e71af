//Package journal keeps a record of every label issued through the
//SoColissimo web service.
package journal

import (
	"context"
	"time"
)

// Entry is one issued label.
type Entry struct {
	ParcelNumber  string    `json:"parcelNumber" db:"parcel_number"`
	CommandNumber string    `json:"commandNumber" db:"command_number"`
	Addressee     string    `json:"addressee" db:"addressee"`
	City          string    `json:"city" db:"city"`
	PostalCode    string    `json:"postalCode" db:"postal_code"`
	CountryCode   string    `json:"countryCode" db:"country_code"`
	PDFURL        string    `json:"pdfUrl" db:"pdf_url"`
	Issued        time.Time `json:"issued" db:"issued"`
}

// Journal is the persistent record of issued labels.
type Journal interface {
	Record(ctx context.Context, e Entry) error
	Load(ctx context.Context, parcelNumber string) (Entry, error)
	List(ctx context.Context, since time.Time) ([]Entry, error)
	Close()
}
