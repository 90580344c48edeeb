package sheets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

// The Estado column of the Propiedades sheet; any other value
// (Reservado, Bloqueado, Mantenimiento) turns the property off.
const statusAvailable = "Disponible"

type record map[string]string

// recordsFromRows converts a header row plus data rows into field
// maps. Header names become lower-cased keys, matching the
// spreadsheet's column naming. Short rows read as empty fields.
func recordsFromRows(rows [][]interface{}) []record {
	if len(rows) <= 1 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(fmt.Sprint(h))
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = strings.TrimSpace(fmt.Sprint(row[i]))
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	return records
}

// Propiedades columns: ID | Nombre | Ciudad | Precio | Capacidad | Estado
func propertyFromRecord(rec record) (domain.Property, error) {
	if rec["id"] == "" {
		return domain.Property{}, errors.New("missing id")
	}

	price, err := domain.ParsePrice(rec["precio"])
	if err != nil {
		return domain.Property{}, fmt.Errorf("parse precio: %w", err)
	}

	capacity, err := strconv.Atoi(rec["capacidad"])
	if err != nil {
		return domain.Property{}, fmt.Errorf("parse capacidad: %w", err)
	}

	return domain.Property{
		ID:            rec["id"],
		Title:         rec["nombre"],
		City:          rec["ciudad"],
		PricePerNight: price,
		Capacity:      capacity,
		Available:     strings.EqualFold(rec["estado"], statusAvailable),
	}, nil
}

// Reservas columns: ID | Propiedad_ID | Huésped | Email | Check-in | Check-out | Estado
func reservationFromRecord(rec record) (domain.Reservation, error) {
	if rec["id"] == "" || rec["propiedad_id"] == "" {
		return domain.Reservation{}, errors.New("missing id or propiedad_id")
	}

	checkin, err := domain.ParseDate(rec["check-in"])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("parse check-in: %w", err)
	}
	checkout, err := domain.ParseDate(rec["check-out"])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("parse check-out: %w", err)
	}

	return domain.Reservation{
		ID:         rec["id"],
		PropertyID: rec["propiedad_id"],
		GuestName:  rec["huésped"],
		Email:      rec["email"],
		Checkin:    checkin,
		Checkout:   checkout,
		Status:     domain.ReservationStatus(strings.ToLower(rec["estado"])),
	}, nil
}
