package sheets

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/config"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/wb-go/wbf/logger"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Ranges follow the spreadsheet layout: one sheet per collection, a
// header row, one record per data row.
const (
	propertiesRange   = "Propiedades!A:F"
	reservationsRange = "Reservas!A:G"
)

// Client reads the property and reservation sheets and appends created
// reservations back to the Reservas range.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	logger        logger.Logger
}

func NewClient(ctx context.Context, cfg config.SheetsConfig, log logger.Logger) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		return nil, errors.New("sheets: api_key or credentials_file is required")
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        log,
	}, nil
}

func (c *Client) LoadProperties(ctx context.Context) ([]domain.Property, error) {
	records, err := c.fetch(ctx, propertiesRange)
	if err != nil {
		return nil, err
	}

	properties := make([]domain.Property, 0, len(records))
	for _, rec := range records {
		p, err := propertyFromRecord(rec)
		if err != nil {
			c.logger.Warn("skipping malformed property row",
				logger.String("id", rec["id"]),
				logger.String("error", err.Error()),
			)
			continue
		}
		properties = append(properties, p)
	}

	return properties, nil
}

func (c *Client) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	records, err := c.fetch(ctx, reservationsRange)
	if err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(records))
	for _, rec := range records {
		r, err := reservationFromRecord(rec)
		if err != nil {
			c.logger.Warn("skipping malformed reservation row",
				logger.String("id", rec["id"]),
				logger.String("error", err.Error()),
			)
			continue
		}
		reservations = append(reservations, r)
	}

	return reservations, nil
}

// AppendReservation writes one row to the Reservas range: the seven
// columns the sheet defines (id, property, guest, email, dates,
// status).
func (c *Client) AppendReservation(ctx context.Context, r *domain.Reservation) error {
	values := &gsheets.ValueRange{
		Values: [][]interface{}{{
			r.ID,
			r.PropertyID,
			r.GuestName,
			r.Email,
			r.Checkin.Format(domain.DateLayout),
			r.Checkout.Format(domain.DateLayout),
			string(r.Status),
		}},
	}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, reservationsRange, values).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append reservation row: %w", err)
	}

	return nil
}

func (c *Client) fetch(ctx context.Context, readRange string) ([]record, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get range %s: %w", readRange, err)
	}

	return recordsFromRows(resp.Values), nil
}
