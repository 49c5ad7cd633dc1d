package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pratikmusmade/bookmart/internal/infrastructure/config"
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
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&SellerModel{},
		&BookModel{},
		&OrderModel{},
		&ReviewModel{},
		&RequestModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 4. 删除采用物理删除（级联删除由应用层在事务内完成）
// 5. 用户名与邮箱各有唯一索引，索引显式命名，
//    Repository靠索引名区分1062冲突落在哪个字段上
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex:uk_users_username;size:50;not null;comment:用户名"`
	Email     string    `gorm:"uniqueIndex:uk_users_email;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName string    `gorm:"size:50;comment:名"`
	LastName  string    `gorm:"size:50;comment:姓"`
	IsSeller  bool      `gorm:"default:false;comment:是否为卖家"`
	IsAdmin   bool      `gorm:"default:false;comment:是否为管理员"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// SellerModel GORM卖家模型
// 设计说明：
// 1. GSTIN有唯一索引，重复注册由数据库兜底
// 2. UserID有普通索引，支持查询某用户的全部店铺（一对多）
type SellerModel struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"index;not null;comment:所属用户ID"`
	ShopName       string    `gorm:"size:100;not null;comment:店铺名称"`
	GSTIN          string    `gorm:"uniqueIndex;size:15;not null;comment:GSTIN税号"`
	ApprovedStatus bool      `gorm:"default:false;comment:审核状态"`
	CreatedAt      time.Time `gorm:"comment:创建时间"`
	UpdatedAt      time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (SellerModel) TableName() string {
	return "sellers"
}

// BookModel GORM图书模型
// 设计说明：
// 1. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 2. (seller_id, title, author)建复合索引，上架合并查询走索引
//    注意不是唯一索引：合并由应用层逻辑完成，历史数据可能已有重复
// 3. Condition用字符串存储（new/used），可读性优先
type BookModel struct {
	ID                 uint      `gorm:"primaryKey"`
	SellerID           uint      `gorm:"index:idx_catalog;not null;comment:卖家ID"`
	Title              string    `gorm:"index:idx_catalog;size:200;not null;comment:书名"`
	Author             string    `gorm:"index:idx_catalog;size:100;not null;comment:作者"`
	Category           string    `gorm:"index;size:50;comment:分类"`
	Price              int64     `gorm:"not null;comment:价格(分)"`
	AvailabilityStatus bool      `gorm:"default:true;comment:是否可售"`
	RentalOption       bool      `gorm:"default:false;comment:是否支持租借"`
	Condition          string    `gorm:"size:10;not null;comment:品相(new/used)"`
	Quantity           uint      `gorm:"default:1;comment:库存数量"`
	ImageURL           string    `gorm:"size:500;comment:封面图片URL"`
	CreatedAt          time.Time `gorm:"comment:创建时间"`
	UpdatedAt          time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// OrderModel GORM订单模型
// 设计说明：
// 1. 一个订单对应一本图书（单条目模型）
// 2. Status用字符串存储，取值校验在domain层完成
type OrderModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null;comment:买家用户ID"`
	BookID      uint      `gorm:"index;not null;comment:图书ID"`
	TotalAmount int64     `gorm:"not null;comment:订单金额(分)"`
	Status      string    `gorm:"index;size:20;default:pending;comment:订单状态"`
	CreatedAt   time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// ReviewModel GORM评价模型
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null;comment:评价人用户ID"`
	BookID    uint      `gorm:"index;not null;comment:图书ID"`
	Rating    int       `gorm:"not null;comment:评分(1-5)"`
	Comment   string    `gorm:"type:text;comment:评价内容"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// RequestModel GORM求书单模型
// 设计说明：
// 1. Status与RequestStatus是两套独立的状态字段（见domain/request）
// 2. AcceptedSellerID可为NULL（未接单）
type RequestModel struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"index;not null;comment:发起人用户ID"`
	BookTitle        string    `gorm:"size:200;not null;comment:求购书名"`
	Author           string    `gorm:"size:100;comment:作者"`
	Status           string    `gorm:"size:20;default:pending;comment:处理结果状态"`
	RequestStatus    string    `gorm:"size:20;default:open;comment:工作流状态"`
	AcceptedSellerID *uint     `gorm:"index;comment:接单卖家ID"`
	CreatedAt        time.Time `gorm:"comment:创建时间"`
	UpdatedAt        time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (RequestModel) TableName() string {
	return "requests"
}
