package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL   PRIMARY KEY,
  name          TEXT        NOT NULL,
  phone         TEXT        NOT NULL UNIQUE,
  email         TEXT        NOT NULL DEFAULT '',
  password_hash TEXT        NOT NULL,
  role          TEXT        NOT NULL CHECK (role IN ('seller', 'buyer')),
  location      TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_products",
		SQL: `CREATE TABLE IF NOT EXISTS products (
  id           BIGSERIAL        PRIMARY KEY,
  seller_phone TEXT             NOT NULL REFERENCES users (phone),
  name         TEXT             NOT NULL,
  category     TEXT             NOT NULL,
  variety      TEXT             NOT NULL DEFAULT '',
  unit         TEXT             NOT NULL,
  price        DOUBLE PRECISION NOT NULL CHECK (price > 0),
  stock_qty    DOUBLE PRECISION NOT NULL CHECK (stock_qty >= 0),
  description  TEXT             NOT NULL DEFAULT '',
  image_path   TEXT             NOT NULL DEFAULT '',
  status       TEXT             NOT NULL DEFAULT 'active',
  created_at   TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_orders",
		SQL: `CREATE TABLE IF NOT EXISTS orders (
  id               BIGSERIAL        PRIMARY KEY,
  order_number     TEXT             NOT NULL UNIQUE,
  buyer_phone      TEXT             NOT NULL REFERENCES users (phone),
  seller_phone     TEXT             NOT NULL REFERENCES users (phone),
  product_id       BIGINT           NOT NULL REFERENCES products (id),
  quantity         DOUBLE PRECISION NOT NULL CHECK (quantity > 0),
  unit_price       DOUBLE PRECISION NOT NULL CHECK (unit_price > 0),
  total_amount     DOUBLE PRECISION NOT NULL CHECK (total_amount > 0),
  status           TEXT             NOT NULL DEFAULT 'pending',
  delivery_address TEXT             NOT NULL DEFAULT '',
  payment_method   TEXT             NOT NULL DEFAULT '',
  notes            TEXT             NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ      NOT NULL DEFAULT now(),
  delivered_at     TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_cart",
		SQL: `CREATE TABLE IF NOT EXISTS cart (
  id          BIGSERIAL        PRIMARY KEY,
  buyer_phone TEXT             NOT NULL REFERENCES users (phone),
  product_id  BIGINT           NOT NULL REFERENCES products (id),
  quantity    DOUBLE PRECISION NOT NULL CHECK (quantity > 0),
  added_at    TIMESTAMPTZ      NOT NULL DEFAULT now(),
  UNIQUE (buyer_phone, product_id)
);`,
	},
	{
		Name: "create_table_govt_schemes",
		SQL: `CREATE TABLE IF NOT EXISTS govt_schemes (
  id           BIGSERIAL   PRIMARY KEY,
  name         TEXT        NOT NULL UNIQUE,
  description  TEXT        NOT NULL,
  benefits     TEXT        NOT NULL DEFAULT '',
  eligibility  TEXT        NOT NULL DEFAULT '',
  how_to_apply TEXT        NOT NULL DEFAULT '',
  department   TEXT        NOT NULL DEFAULT '',
  website_url  TEXT        NOT NULL DEFAULT '',
  contact_info TEXT        NOT NULL DEFAULT '',
  is_active    BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_price_history",
		SQL: `CREATE TABLE IF NOT EXISTS price_history (
  id           BIGSERIAL        PRIMARY KEY,
  product_name TEXT             NOT NULL,
  market_price DOUBLE PRECISION NOT NULL,
  source       TEXT             NOT NULL DEFAULT 'market_api',
  location     TEXT             NOT NULL DEFAULT 'Hamirpur',
  recorded_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_addresses",
		SQL: `CREATE TABLE IF NOT EXISTS addresses (
  id            BIGSERIAL   PRIMARY KEY,
  user_phone    TEXT        NOT NULL REFERENCES users (phone),
  label         TEXT        NOT NULL,
  address_line1 TEXT        NOT NULL,
  address_line2 TEXT        NOT NULL DEFAULT '',
  city          TEXT        NOT NULL,
  state         TEXT        NOT NULL,
  pincode       TEXT        NOT NULL,
  is_default    BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_notifications",
		SQL: `CREATE TABLE IF NOT EXISTS notifications (
  id                BIGSERIAL   PRIMARY KEY,
  user_phone        TEXT        NOT NULL REFERENCES users (phone),
  title             TEXT        NOT NULL,
  message           TEXT        NOT NULL,
  notification_type TEXT        NOT NULL DEFAULT 'general',
  is_read           BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_products_seller_phone",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_products_seller_phone ON products (seller_phone);`,
	},
	{
		Name: "create_index_products_status_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_products_status_created_at ON products (status, created_at DESC);`,
	},
	{
		Name: "create_index_orders_buyer_phone",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_orders_buyer_phone ON orders (buyer_phone);`,
	},
	{
		Name: "create_index_orders_seller_phone",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_orders_seller_phone ON orders (seller_phone);`,
	},
	{
		Name: "create_index_price_history_product_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_price_history_product_name ON price_history (product_name, recorded_at DESC);`,
	},
	{
		Name: "create_index_notifications_user_phone",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_notifications_user_phone ON notifications (user_phone, created_at DESC);`,
	},
}

// dropOrder lists tables children-first so foreign keys never block a drop.
var dropOrder = []string{
	"notifications",
	"addresses",
	"price_history",
	"govt_schemes",
	"cart",
	"orders",
	"products",
	"users",
}

type scheme struct {
	Name, Description, Benefits, Eligibility, HowToApply, Department, WebsiteURL, ContactInfo string
}

var defaultSchemes = []scheme{
	{"PM-KISAN", "Pradhan Mantri Kisan Samman Nidhi", "₹6000 per year in 3 installments",
		"Small and marginal farmers", "Apply through CSC centers",
		"Ministry of Agriculture", "https://pmkisan.gov.in", "1800-115-526"},
	{"Soil Health Card", "Free soil testing", "Free soil testing",
		"All farmers", "Contact agriculture department",
		"Department of Agriculture", "https://soilhealth.dac.gov.in", "1800-180-1551"},
	{"KCC", "Kisan Credit Card", "Credit up to ₹3 lakh",
		"All farmers", "Apply through banks",
		"NABARD", "https://nabard.org", "1800-103-0982"},
}

const (
	qUsersColumns = `SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = 'users'`
	qAddLocation  = `ALTER TABLE users ADD COLUMN location TEXT NOT NULL DEFAULT ''`
	qSeedScheme   = `INSERT INTO govt_schemes (name, description, benefits, eligibility, how_to_apply, department, website_url, contact_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO NOTHING`
)

// EnsureMigrated brings the schema up to date. It is safe to run on every start:
// a users table created before the location column existed gains it, every
// table and index is created if absent, and the default schemes are seeded.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Logger()

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Msg("")

	added, err := ensureLocationColumn(ctx, db)
	if err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Str("migration_step", "add_users_location").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("")
		return fmt.Errorf("migration step add_users_location failed: %w", err)
	}
	if added {
		log.Info().Str("event", "db_migration_step").Str("migration_step", "add_users_location").Str("status", "success").Msg("")
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("")
	}

	if err := seedSchemes(ctx, db); err != nil {
		log.Error().Err(err).Str("event", "db_migration_failed").Str("migration_step", "seed_govt_schemes").Msg("")
		return fmt.Errorf("migration step seed_govt_schemes failed: %w", err)
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("")
	return nil
}

// Reset drops every application table and migrates from scratch.
func Reset(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	for _, table := range dropOrder {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	log.Warn().Str("component", "database").Str("event", "db_reset").Int("tables", len(dropOrder)).Msg("all tables dropped")
	return EnsureMigrated(ctx, db, log)
}

// ensureLocationColumn adds users.location when an older users table lacks it.
// A missing users table is left to the create steps.
func ensureLocationColumn(ctx context.Context, db *sql.DB) (bool, error) {
	rows, err := db.QueryContext(ctx, qUsersColumns)
	if err != nil {
		return false, fmt.Errorf("read users columns: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return false, err
	}

	if len(columns) == 0 {
		return false, nil
	}
	for _, c := range columns {
		if c == "location" {
			return false, nil
		}
	}

	if _, err := db.ExecContext(ctx, qAddLocation); err != nil {
		return false, err
	}
	return true, nil
}

func seedSchemes(ctx context.Context, db *sql.DB) error {
	for _, s := range defaultSchemes {
		if _, err := db.ExecContext(ctx, qSeedScheme,
			s.Name, s.Description, s.Benefits, s.Eligibility,
			s.HowToApply, s.Department, s.WebsiteURL, s.ContactInfo,
		); err != nil {
			return err
		}
	}
	return nil
}
