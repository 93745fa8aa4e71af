package repo

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/oracom/socolissimo/journal"
)

type basicRepository struct {
	db *sqlx.DB
}

//New creates new Journal
func New(connection string) (journal.Journal, error) {
	rep, _, err := NewTest(connection)
	return rep, err
}

//NewTest creates new Journal, expect mysql connection sqlx.DB
func NewTest(connection string) (journal.Journal, *sqlx.DB, error) {
	var db *sqlx.DB
	db, err := sqlx.Connect("mysql", connection)
	if err != nil {
		return nil, nil, err
	}

	return &basicRepository{
		db: db,
	}, db, nil
}

func (b *basicRepository) Close() {
	b.db.Close()
}

func (b *basicRepository) Record(ctx context.Context, e journal.Entry) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO letters (parcel_number, command_number, addressee, city, postal_code, country_code, pdf_url, issued)")
	sb.WriteString(" VALUES (?, ?, ?, ?, ?, ?, ?, NOW())")
	var ssql = sb.String()
	_, err := b.db.ExecContext(ctx, ssql, e.ParcelNumber, e.CommandNumber, e.Addressee, e.City, e.PostalCode, e.CountryCode, e.PDFURL)
	return err
}

func (b *basicRepository) Load(ctx context.Context, parcelNumber string) (journal.Entry, error) {
	var res journal.Entry
	ssql := "SELECT parcel_number, command_number, addressee, city, postal_code, country_code, pdf_url, issued FROM letters WHERE parcel_number = ?"
	err := b.db.GetContext(ctx, &res, ssql, parcelNumber)
	return res, err
}

func (b *basicRepository) List(ctx context.Context, since time.Time) ([]journal.Entry, error) {
	res := []journal.Entry{}
	ssql := "SELECT parcel_number, command_number, addressee, city, postal_code, country_code, pdf_url, issued FROM letters WHERE issued >= ? ORDER BY issued DESC"
	err := b.db.SelectContext(ctx, &res, ssql, since)
	return res, err
}
