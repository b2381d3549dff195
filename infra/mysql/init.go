package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mbeoliero/iou/infra/config"
	"github.com/mbeoliero/iou/infra/resource"
)

type DB = resource.Lazy[config.MySqlConfig, *gorm.DB]

var db *DB

// Init registers the database from the global config. The connection is
// opened on the first GetDB.
func Init() *DB {
	db = New(config.Get().MySql)
	return db
}

func New(cfg config.MySqlConfig) *DB {
	return resource.NewLazy("mysql", cfg, Open, closeDB)
}

func DSN(cfg config.MySqlConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
}

// Open connects to mysql and applies the pool settings.
func Open(cfg config.MySqlConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(DSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect mysql: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// 设置连接池参数
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return gdb, nil
}

func closeDB(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() (*gorm.DB, error) {
	return db.Get()
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
