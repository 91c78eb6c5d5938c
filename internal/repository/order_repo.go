package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carshield-admin-api/internal/model"
)

type OrderRepo struct {
	db *pgxpool.Pool
}

func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrder inserts the order and its service lines in one transaction and
// returns the order id.
func (r *OrderRepo) CreateOrder(ctx context.Context, p model.OrderPayload) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderID := uuid.NewString()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, client_id, client_name, phone, branch,
			vehicle_manufacturer, vehicle_model, vehicle_color, plate_number, vehicle_size
		) VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10)
	`, orderID, p.ClientID, p.Client.FullName(), p.Client.Phone, p.Client.Branch,
		p.Vehicle.Manufacturer, p.Vehicle.Model, p.Vehicle.Color,
		p.Vehicle.PlateNumber, string(p.Vehicle.Size))
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	for i, svc := range p.Services {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_services (
				order_id, position, category,
				protection_finish, protection_size, protection_coverage, protection_color,
				insulator_type, insulator_coverage,
				polish_type, polish_level,
				addition_type, wash_scope,
				deal_details, price, service_date,
				guarantee_duration, guarantee_start, guarantee_end,
				guarantee_terms, guarantee_notes
			) VALUES ($1, $2, $3,
				NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
				NULLIF($8, ''), NULLIF($9, ''),
				NULLIF($10, ''), NULLIF($11, ''),
				NULLIF($12, ''), NULLIF($13, ''),
				NULLIF($14, ''), $15, $16,
				NULLIF($17, ''), $18, $19,
				NULLIF($20, ''), NULLIF($21, ''))
		`, orderID, i, string(svc.Category),
			svc.ProtectionFinish, svc.ProtectionSize, svc.ProtectionCoverage, svc.ProtectionColor,
			svc.InsulatorType, svc.InsulatorCoverage,
			svc.PolishType, svc.PolishLevel,
			svc.AdditionType, svc.WashScope,
			svc.DealDetails, svc.Price, svc.ServiceDate,
			svc.GuaranteeDuration, svc.GuaranteeStart, svc.GuaranteeEnd,
			svc.GuaranteeTerms, svc.GuaranteeNotes)
		if err != nil {
			return "", fmt.Errorf("failed to insert order service %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

// List returns the order feed, newest first, without service lines.
func (r *OrderRepo) List(ctx context.Context) ([]model.OrderRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(client_id::text, ''), client_name, phone,
			plate_number, vehicle_manufacturer, vehicle_model, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.OrderRecord
	for rows.Next() {
		var o model.OrderRecord
		if err := rows.Scan(&o.ID, &o.ClientID, &o.ClientName, &o.Phone,
			&o.PlateNumber, &o.Manufacturer, &o.VehicleModel, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// GetByID returns one order with its service lines.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*model.OrderRecord, error) {
	var o model.OrderRecord
	err := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(client_id::text, ''), client_name, phone,
			plate_number, vehicle_manufacturer, vehicle_model, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.ClientID, &o.ClientName, &o.Phone,
		&o.PlateNumber, &o.Manufacturer, &o.VehicleModel, &o.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT category,
			COALESCE(protection_finish, ''), COALESCE(protection_size, ''),
			COALESCE(protection_coverage, ''), COALESCE(protection_color, ''),
			COALESCE(insulator_type, ''), COALESCE(insulator_coverage, ''),
			COALESCE(polish_type, ''), COALESCE(polish_level, ''),
			COALESCE(addition_type, ''), COALESCE(wash_scope, ''),
			COALESCE(deal_details, ''), price, service_date,
			COALESCE(guarantee_duration, ''), guarantee_start, guarantee_end,
			COALESCE(guarantee_terms, ''), COALESCE(guarantee_notes, '')
		FROM order_services
		WHERE order_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.OrderService
		if err := rows.Scan(&s.Category,
			&s.ProtectionFinish, &s.ProtectionSize, &s.ProtectionCoverage, &s.ProtectionColor,
			&s.InsulatorType, &s.InsulatorCoverage,
			&s.PolishType, &s.PolishLevel,
			&s.AdditionType, &s.WashScope,
			&s.DealDetails, &s.Price, &s.ServiceDate,
			&s.GuaranteeDuration, &s.GuaranteeStart, &s.GuaranteeEnd,
			&s.GuaranteeTerms, &s.GuaranteeNotes); err != nil {
			return nil, err
		}
		o.Services = append(o.Services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
