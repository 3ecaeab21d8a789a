package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createSpeakerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE speakers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		title TEXT,
		organization TEXT,
		talk_title TEXT NOT NULL,
		abstract TEXT,
		track TEXT,
		bio TEXT,
		photo_url TEXT,
		linkedin_url TEXT,
		twitter_url TEXT,
		github_url TEXT,
		talk_length_minutes INTEGER NOT NULL DEFAULT 30,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createVolunteerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE volunteers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		role TEXT NOT NULL,
		experience_level TEXT,
		availability TEXT NOT NULL DEFAULT '[]',
		motivation TEXT,
		photo_url TEXT,
		linkedin_url TEXT,
		twitter_url TEXT,
		github_url TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createSponsorTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sponsors (
		id TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		tier TEXT NOT NULL,
		logo_url TEXT,
		website_url TEXT,
		description TEXT,
		contact_email TEXT,
		benefits TEXT NOT NULL DEFAULT '[]',
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createAdminUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
