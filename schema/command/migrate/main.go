package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/tutolink/tutolink-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("tutolink")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS tutolink`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO tutolink").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.Course{},
		&schema.ExpertiseEntry{},
		&schema.Session{},
		&schema.RejectedRequest{},
	).Error; err != nil {
		panic(err)
	}

	// The accept UPDATE's subquery cannot see a concurrent accept of a
	// different request from the same rookie; this index is the
	// authoritative guard for the one-active-session-per-pair rule.
	if err := db.Model(schema.Session{}).
		Where(fmt.Sprintf("status IN ('%s', '%s')", schema.SESSION_ACCEPTED, schema.SESSION_IN_PROGRESS)).
		AddUniqueIndex("sessions_active_pair_unique", "tuto_id", "rookie_id").Error; err != nil {
		panic(err)
	}
}
