package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"assistmenow/internal/domain"
)

type RecipientWriter interface {
	Create(ctx context.Context, r domain.Recipient) (*domain.Recipient, error)
	Upsert(ctx context.Context, r domain.Recipient) (*domain.Recipient, error)
}

// CSVImporter reads recipient spreadsheets exported by intake staff and stores each recipient.
type CSVImporter struct {
	reader    *csv.Reader
	repo      RecipientWriter
	createdBy string
}

func NewCSVImporter(r io.Reader, repo RecipientWriter, createdBy string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:    csvr,
		repo:      repo,
		createdBy: createdBy,
	}
}

// Run parses CSV rows and stores recipients. A row without a first or last name continues the
// notes of the recipient above it.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *domain.Recipient
		imported int
		line     = 1
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.FirstName != "" || row.LastName != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			if row.FirstName == "" || row.LastName == "" || row.Address.Street == "" {
				return imported, fmt.Errorf("line %d: first name, last name, and street are required", line)
			}
			current = row
			continue
		}

		if current != nil && row.Notes != "" {
			current.Notes = strings.TrimSpace(current.Notes + "\n" + row.Notes)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, r *domain.Recipient) error {
	r.CreatedBy = i.createdBy
	var err error
	if r.ID != "" {
		_, err = i.repo.Upsert(ctx, *r)
	} else {
		_, err = i.repo.Create(ctx, *r)
	}
	if err != nil {
		return fmt.Errorf("store recipient %s %s: %w", r.FirstName, r.LastName, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *domain.Recipient {
	r := &domain.Recipient{
		ID:        pick(record, index, "id"),
		FirstName: pick(record, index, "firstName"),
		LastName:  pick(record, index, "lastName"),
		Email:     pick(record, index, "email"),
		Phone:     pick(record, index, "phone"),
		Address: domain.Address{
			Street:     pick(record, index, "address.street"),
			City:       pick(record, index, "address.city"),
			State:      pick(record, index, "address.state"),
			PostalCode: pick(record, index, "address.postalCode"),
			Country:    pick(record, index, "address.country"),
		},
		Notes:    pick(record, index, "notes"),
		PhotoURL: pick(record, index, "photoUrl"),
	}
	if r.FirstName == "" && r.LastName == "" && r.Notes == "" {
		return nil
	}
	return r
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
