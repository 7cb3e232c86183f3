package db

// SeedLanguage is one row of the fixed language reference set.
type SeedLanguage struct {
	Name        string
	Code        string
	Description string
}

var SeedLanguages = []SeedLanguage{
	{"Twi", "tw", "A dialect of the Akan language spoken in southern Ghana"},
	{"Ewe", "ee", "A Gbe language spoken in southeastern Ghana and southern Togo"},
	{"Ga", "gaa", "A Kwa language spoken in the Greater Accra region of Ghana"},
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS languages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		code TEXT UNIQUE NOT NULL,
		description TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// PostgresSchema is the server-engine DDL. It is not applied automatically:
// the postgres database is provisioned ahead of time, the statements live
// here so deployments and tests share one definition.
var PostgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		created_at TIMESTAMPTZ DEFAULT now(),
		updated_at TIMESTAMPTZ DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS languages (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT UNIQUE NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ DEFAULT now()
	)`,
}
