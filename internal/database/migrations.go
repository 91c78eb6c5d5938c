package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the schema idempotently.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			second_name VARCHAR(100) NOT NULL,
			third_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			full_name_normalized VARCHAR(500) NOT NULL,
			phone VARCHAR(10) NOT NULL UNIQUE,
			second_phone VARCHAR(10),
			email VARCHAR(255),
			category VARCHAR(50) NOT NULL DEFAULT 'regular',
			branch VARCHAR(100) NOT NULL,
			vehicle_manufacturer VARCHAR(100),
			vehicle_model VARCHAR(100),
			vehicle_color VARCHAR(50),
			plate_number VARCHAR(8),
			vehicle_size VARCHAR(20),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create clients table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_clients_full_name
		ON clients(full_name_normalized)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_clients_full_name: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			client_id UUID REFERENCES clients(id),
			client_name VARCHAR(500) NOT NULL,
			phone VARCHAR(10) NOT NULL,
			branch VARCHAR(100),
			vehicle_manufacturer VARCHAR(100),
			vehicle_model VARCHAR(100),
			vehicle_color VARCHAR(50),
			plate_number VARCHAR(8),
			vehicle_size VARCHAR(20),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS order_services (
			id SERIAL PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			category VARCHAR(20) NOT NULL,
			protection_finish VARCHAR(20),
			protection_size VARCHAR(10),
			protection_coverage VARCHAR(20),
			protection_color VARCHAR(50),
			insulator_type VARCHAR(20),
			insulator_coverage VARCHAR(20),
			polish_type VARCHAR(30),
			polish_level VARCHAR(5),
			addition_type VARCHAR(30),
			wash_scope VARCHAR(30),
			deal_details TEXT,
			price DECIMAL(10,2),
			service_date TIMESTAMPTZ,
			guarantee_duration VARCHAR(50),
			guarantee_start TIMESTAMPTZ,
			guarantee_end TIMESTAMPTZ,
			guarantee_terms TEXT,
			guarantee_notes TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create order_services table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_order_services_order
		ON order_services(order_id)
	`)
	if err != nil {
		return fmt.Errorf("failed to create idx_order_services_order: %w", err)
	}

	return nil
}
