package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func SetupDatabase(
	dbBackend string,
	dbPathSqlite string,
	dbURL string,
	debug bool,
) *gorm.DB {
	var db *gorm.DB
	var err error

	// TranslateError lets callers match driver-specific failures like
	// unique constraint violations against gorm.ErrDuplicatedKey.
	switch dbBackend {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dbPathSqlite), &gorm.Config{TranslateError: true})
	case "postgres":
		db, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{TranslateError: true})
	default:
		panic(fmt.Sprintf("Unsupported/Unimplemented database backend: %s", dbBackend))
	}
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	stmt := &gorm.Statement{DB: db}
	if debug {
		for i, table := range Tabels {
			stmt.Parse(table)
			tableName := stmt.Schema.Table
			log.Debug().Msgf("Dropping tables (%v/%v): %v", i+1, len(Tabels), tableName)
			db.Migrator().DropTable(table)
		}
	}

	for i, table := range Tabels {
		stmt.Parse(table)
		tableName := stmt.Schema.Table
		log.Info().Msgf("Migrating table (%v/%v): %v", i+1, len(Tabels), tableName)
		err = db.AutoMigrate(table)
		if err != nil {
			panic(fmt.Sprintf("Failed to migrate table: %v", err))
		}
	}

	return db
}

// SeedDemoList creates a demo association with one user per role,
// all with the password "password". Debug mode only.
func SeedDemoList(DB *gorm.DB) {
	list := List{Name: "Demo BDE", School: "Demo School"}
	if r := DB.Create(&list); r.Error != nil {
		panic(fmt.Sprintf("Failed to create demo list: %v", r.Error))
	}

	for _, seed := range []struct {
		name  string
		email string
		role  string
	}{
		{"Demo Admin", "admin@campusflow.local", RoleAdmin},
		{"Demo Treasurer", "treasurer@campusflow.local", RoleTreasurer},
		{"Demo Member", "member@campusflow.local", RoleMember},
	} {
		user, err := RegisterUser(DB, seed.name, seed.email, []byte("password"), seed.role, list.ID)
		if err != nil {
			panic(fmt.Sprintf("Failed to create demo user: %v", err))
		}
		log.Info().Msgf("Created demo user: '%v'", user.Email)
	}
}
