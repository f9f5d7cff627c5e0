package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB 按配置打开数据库连接并设置连接池
func OpenDB(c *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.Database.Driver {
	case DriverMySQL:
		dialector = mysql.Open(c.Database.Dsn)
	case DriverSQLite:
		dialector = sqlite.Open(c.Database.Dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	gormCfg := &gorm.Config{}
	if c.App.Production {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", c.Database.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if c.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.Database.MaxIdleConns)
	}
	if c.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.Database.MaxOpenConns)
	}
	if c.Database.ConnMaxLifetimeHours > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(c.Database.ConnMaxLifetimeHours) * time.Hour)
	}
	return db, nil
}
