package book

import (
	"time"
)

// Condition 图书品相
type Condition string

const (
	ConditionNew  Condition = "new"  // 全新
	ConditionUsed Condition = "used" // 二手
)

// IsValid 检查品相取值是否合法
func (c Condition) IsValid() bool {
	return c == ConditionNew || c == ConditionUsed
}

// Book 图书实体（聚合根）
// 设计说明：
// 1. 归属于一个卖家店铺（SellerID），不直接关联用户
// 2. 价格使用int64存储"分"为单位（避免浮点数精度问题）；
//    与原有行为保持一致，价格不做正负校验
// 3. 目录不变式：同一(卖家,书名,作者)至多一条记录，
//    由Service层的上架合并逻辑维护（见service.go）
// 4. 图片只保存外部URL引用，不做存储
type Book struct {
	ID                 uint
	SellerID           uint      // 所属卖家店铺ID
	Title              string    // 书名
	Author             string    // 作者
	Category           string    // 分类
	Price              int64     // 价格(分)
	AvailabilityStatus bool      // 是否可售
	RentalOption       bool      // 是否支持租借
	Condition          Condition // 品相(new/used)
	Quantity           uint      // 库存数量
	ImageURL           string    // 封面图片URL
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewBook 创建新图书（工厂方法）
// quantity为0时取默认值1
func NewBook(sellerID uint, title, author, category string, price int64,
	availability, rental bool, condition Condition, quantity uint, imageURL string) *Book {
	if quantity == 0 {
		quantity = 1
	}
	now := time.Now()
	return &Book{
		SellerID:           sellerID,
		Title:              title,
		Author:             author,
		Category:           category,
		Price:              price,
		AvailabilityStatus: availability,
		RentalOption:       rental,
		Condition:          condition,
		Quantity:           quantity,
		ImageURL:           imageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Restock 补货（领域行为）
// 只增加库存数量，不触碰价格、分类、品相、可售状态与图片
// quantity为0时按默认值1处理
func (b *Book) Restock(quantity uint) {
	if quantity == 0 {
		quantity = 1
	}
	b.Quantity += quantity
	b.UpdatedAt = time.Now()
}

// UpdateInfo 更新图书信息（通用更新接口使用，不走上架合并逻辑）
// 空字符串/nil表示不修改对应字段
func (b *Book) UpdateInfo(params UpdateParams) error {
	if params.Title != "" {
		b.Title = params.Title
	}
	if params.Author != "" {
		b.Author = params.Author
	}
	if params.Category != "" {
		b.Category = params.Category
	}
	if params.Price != nil {
		b.Price = *params.Price
	}
	if params.AvailabilityStatus != nil {
		b.AvailabilityStatus = *params.AvailabilityStatus
	}
	if params.RentalOption != nil {
		b.RentalOption = *params.RentalOption
	}
	if params.Condition != "" {
		if !params.Condition.IsValid() {
			return ErrInvalidCondition
		}
		b.Condition = params.Condition
	}
	if params.Quantity != nil {
		b.Quantity = *params.Quantity
	}
	if params.ImageURL != "" {
		b.ImageURL = params.ImageURL
	}
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateParams 图书更新参数
// 显式命名字段，边界处完成类型校验后再进入领域层
type UpdateParams struct {
	Title              string
	Author             string
	Category           string
	Price              *int64
	AvailabilityStatus *bool
	RentalOption       *bool
	Condition          Condition
	Quantity           *uint
	ImageURL           string
}

// IsListedBy 检查图书是否由指定卖家上架
func (b *Book) IsListedBy(sellerID uint) bool {
	return b.SellerID == sellerID
}
