package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&GenreModel{},
		&BookModel{},
		&ReaderModel{},
		&LoanModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/author/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
type AuthorModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;not null;comment:作者姓名"`
	Bio       *string `gorm:"type:text;comment:作者简介(可空)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel GORM分类模型
type GenreModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;comment:分类名称"`
	Description *string `gorm:"type:text;comment:分类描述(可空)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN有唯一索引(自然键),防止重复录入
// 2. AvailableCopies是库存台账字段,只允许借阅事务±1修改
// 3. AuthorID/GenreID为逻辑外键,引用校验在应用层完成
type BookModel struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"size:200;not null;comment:书名"`
	AuthorID        uint   `gorm:"index;not null;comment:作者ID"`
	GenreID         uint   `gorm:"index;not null;comment:分类ID"`
	ISBN            string `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	PublicationYear int    `gorm:"comment:出版年份"`
	AvailableCopies int    `gorm:"not null;default:0;comment:可借副本数"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReaderModel GORM读者模型
// Email有唯一索引(自然键)
type ReaderModel struct {
	ID        uint    `gorm:"primaryKey"`
	FirstName string  `gorm:"size:50;not null;comment:名字"`
	LastName  string  `gorm:"size:50;not null;comment:姓氏"`
	Email     string  `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Phone     *string `gorm:"size:30;comment:电话(可空)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (ReaderModel) TableName() string {
	return "readers"
}

// LoanModel GORM借阅记录模型
// 设计说明:
// 1. ReturnDate可空:NULL即"借出未还",归还时一次性写入日期
// 2. (book_id)和(return_date)有索引:删除保护与归还查找都按它们过滤
// 3. 日期列使用DATE类型,只存日历日期不存时间
type LoanModel struct {
	ID         uint       `gorm:"primaryKey"`
	BookID     uint       `gorm:"index;not null;comment:图书ID"`
	ReaderID   uint       `gorm:"index;not null;comment:读者ID"`
	LoanDate   time.Time  `gorm:"type:date;not null;comment:借出日期"`
	DueDate    time.Time  `gorm:"type:date;not null;comment:应还日期"`
	ReturnDate *time.Time `gorm:"type:date;index;comment:归还日期(NULL=未还)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "loans"
}
