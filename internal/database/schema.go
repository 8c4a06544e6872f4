package database

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash BYTEA NOT NULL,
    role TEXT NOT NULL DEFAULT 'customer',
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
    id BIGSERIAL PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price NUMERIC(18,2) NOT NULL,
    available BOOLEAN NOT NULL DEFAULT TRUE,
    image_url TEXT,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS orders (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    status TEXT NOT NULL DEFAULT 'RECEIVED',
    total_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS order_items (
    id BIGSERIAL PRIMARY KEY,
    order_id BIGINT NOT NULL REFERENCES orders(id),
    product_id BIGINT NOT NULL,
    quantity INT NOT NULL CHECK (quantity > 0),
    unit_price NUMERIC(18,2) NOT NULL,
    total_price NUMERIC(18,2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
`

const seedSQL = `
INSERT INTO products (name, description, price, available, image_url) VALUES
    ('Smartphone XYZ', 'Latest-generation smartphone with a high-resolution camera', 1999.99, TRUE, 'https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop'),
    ('Notebook Pro', 'Powerful notebook for work and gaming', 4999.99, TRUE, 'https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=400&fit=crop'),
    ('Smart TV 4K', '4K TV with HDR and a built-in operating system', 2999.99, TRUE, 'https://images.unsplash.com/photo-1593784991095-a205069470b6?w=400&h=400&fit=crop'),
    ('Bluetooth Headphones', 'Wireless headphones with noise cancelling', 499.99, TRUE, 'https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop'),
    ('Smartwatch', 'Smart watch with a heart-rate monitor', 899.99, TRUE, 'https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop')
ON CONFLICT (name) DO NOTHING;
`

func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	if _, err := db.Exec(seedSQL); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}
