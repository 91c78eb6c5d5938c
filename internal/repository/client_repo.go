package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carshield-admin-api/internal/model"
	"carshield-admin-api/internal/normalize"
)

// Collision sentences returned by the existence lookup. The wizard's
// duplicate guard classifies these by substring.
const (
	msgNameAndPhoneExist = "الاسم ورقم الهاتف موجودان مسبقاً في النظام"
	msgNameExists        = "الاسم موجود مسبقاً في النظام"
	msgPhoneExists       = "رقم الهاتف موجود مسبقاً في النظام"
)

type ClientRepo struct {
	db *pgxpool.Pool
}

func NewClientRepo(db *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{db: db}
}

// CheckExists reports whether a client with the same full name or phone is
// already registered, with the collision sentence describing the overlap.
func (r *ClientRepo) CheckExists(ctx context.Context, c model.DraftClient) (model.ExistsResult, error) {
	fullName := normalize.Clean(c.FullName())

	var nameMatch, phoneMatch bool
	err := r.db.QueryRow(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM clients WHERE full_name_normalized = $1),
			EXISTS (SELECT 1 FROM clients WHERE phone = $2 OR second_phone = $2)
	`, fullName, c.Phone).Scan(&nameMatch, &phoneMatch)
	if err != nil {
		return model.ExistsResult{}, fmt.Errorf("failed to check client existence: %w", err)
	}

	switch {
	case nameMatch && phoneMatch:
		return model.ExistsResult{Exists: true, Message: msgNameAndPhoneExist}, nil
	case nameMatch:
		return model.ExistsResult{Exists: true, Message: msgNameExists}, nil
	case phoneMatch:
		return model.ExistsResult{Exists: true, Message: msgPhoneExists}, nil
	}
	return model.ExistsResult{}, nil
}

// SaveClient upserts the client row keyed by phone and returns its id.
func (r *ClientRepo) SaveClient(ctx context.Context, c model.DraftClient) (string, error) {
	id := uuid.NewString()
	err := r.db.QueryRow(ctx, `
		INSERT INTO clients (
			id, first_name, second_name, third_name, last_name,
			full_name_normalized, phone, second_phone, email, category, branch
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11)
		ON CONFLICT (phone) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			second_name = EXCLUDED.second_name,
			third_name = EXCLUDED.third_name,
			last_name = EXCLUDED.last_name,
			full_name_normalized = EXCLUDED.full_name_normalized,
			second_phone = EXCLUDED.second_phone,
			email = EXCLUDED.email,
			category = EXCLUDED.category,
			branch = EXCLUDED.branch,
			updated_at = NOW()
		RETURNING id
	`, id, c.FirstName, c.SecondName, c.ThirdName, c.LastName,
		normalize.Clean(c.FullName()), c.Phone, c.SecondPhone, c.Email,
		string(c.Category), c.Branch).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save client: %w", err)
	}
	return id, nil
}

// SaveClientVehicle upserts the client row together with its vehicle columns
// (the step-two intermediate commit).
func (r *ClientRepo) SaveClientVehicle(ctx context.Context, clientID string, c model.DraftClient, v model.DraftVehicle) (string, error) {
	id := clientID
	if id == "" {
		id = uuid.NewString()
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO clients (
			id, first_name, second_name, third_name, last_name,
			full_name_normalized, phone, second_phone, email, category, branch,
			vehicle_manufacturer, vehicle_model, vehicle_color, plate_number, vehicle_size
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11,
			$12, $13, $14, $15, $16)
		ON CONFLICT (phone) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			second_name = EXCLUDED.second_name,
			third_name = EXCLUDED.third_name,
			last_name = EXCLUDED.last_name,
			full_name_normalized = EXCLUDED.full_name_normalized,
			second_phone = EXCLUDED.second_phone,
			email = EXCLUDED.email,
			category = EXCLUDED.category,
			branch = EXCLUDED.branch,
			vehicle_manufacturer = EXCLUDED.vehicle_manufacturer,
			vehicle_model = EXCLUDED.vehicle_model,
			vehicle_color = EXCLUDED.vehicle_color,
			plate_number = EXCLUDED.plate_number,
			vehicle_size = EXCLUDED.vehicle_size,
			updated_at = NOW()
		RETURNING id
	`, id, c.FirstName, c.SecondName, c.ThirdName, c.LastName,
		normalize.Clean(c.FullName()), c.Phone, c.SecondPhone, c.Email,
		string(c.Category), c.Branch,
		v.Manufacturer, v.Model, v.Color, v.PlateNumber, string(v.Size)).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save client with vehicle: %w", err)
	}
	return id, nil
}

// List returns the client feed, newest first.
func (r *ClientRepo) List(ctx context.Context) ([]model.ClientRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id,
			CONCAT_WS(' ', first_name, second_name, third_name, last_name),
			phone, second_phone, email, category, branch
		FROM clients
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []model.ClientRecord
	for rows.Next() {
		var c model.ClientRecord
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.SecondPhone, &c.Email, &c.Category, &c.Branch); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}
