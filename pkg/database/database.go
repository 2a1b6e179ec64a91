package database

import (
	"context"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"streamzone/cmd/model"
	"streamzone/config"
)

// Database wraps the gorm handle so the connection has an explicit owner and
// lifecycle: constructed in main, injected into repositories, health-checked
// and closed at shutdown.
type Database struct {
	db *gorm.DB
}

func New() (*Database, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=True&loc=Local",
		config.ConfigInfo.Mysql.Username,
		config.ConfigInfo.Mysql.Password,
		config.ConfigInfo.Mysql.Addr,
		config.ConfigInfo.Mysql.Database,
		config.ConfigInfo.Mysql.Charset,
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}
	return &Database{db: db}, nil
}

// NewWithDB wraps an already opened handle. Tests use it with sqlite.
func NewWithDB(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) DB() *gorm.DB { return d.db }

// Ready reports whether a handle exists at all; a failed startup connect
// leaves the service running with a nil handle so /health stays reachable.
func (d *Database) Ready() bool { return d != nil && d.db != nil }

func (d *Database) Ping(ctx context.Context) error {
	if !d.Ready() {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	if !d.Ready() {
		return nil
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) AutoMigrate() error {
	return d.db.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.WatchHistory{},
		&model.Video{},
		&model.VideoReaction{},
		&model.Comment{},
		&model.CommentReaction{},
	)
}
