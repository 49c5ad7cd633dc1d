package book

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/seller"
)

// PublishParams 图书上架参数
type PublishParams struct {
	SellerID           uint
	Title              string
	Author             string
	Category           string
	Price              int64
	AvailabilityStatus bool
	RentalOption       bool
	Condition          Condition
	Quantity           uint // 0表示默认值1
	ImageURL           string
}

// PublishResult 上架结果
// Restocked区分两条路径：合并补货（已有记录加库存）还是新建记录
type PublishResult struct {
	Book      *Book
	Restocked bool // true表示命中已有(卖家,书名,作者)记录，只做了库存合并
	Added     uint // 本次实际增加的库存数量
}

// Service 图书领域服务接口
type Service interface {
	// Publish 上架图书（目录合并逻辑）
	// 业务规则：
	// - 卖家必须存在，书名/作者非空，品相为new/used
	// - 同一(卖家,书名,作者)已有记录时：只累加库存，
	//   价格、分类、品相等其它字段保持原值，本次提交值被忽略
	// - 无已有记录时：新建记录，quantity为0取默认值1
	Publish(ctx context.Context, params PublishParams) (*PublishResult, error)

	// GetByID 根据ID查询图书
	GetByID(ctx context.Context, id uint) (*Book, error)

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Update 更新图书信息（通用更新，不走合并逻辑）
	Update(ctx context.Context, id uint, params UpdateParams) (*Book, error)
}

type service struct {
	repo       Repository
	sellerRepo seller.Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository, sellerRepo seller.Repository) Service {
	return &service{
		repo:       repo,
		sellerRepo: sellerRepo,
	}
}

// Publish 上架图书
// 核心流程：
// 1. 参数校验（卖家存在、书名作者非空、品相合法）
// 2. 按(卖家,书名,作者)精确匹配查找已有记录
// 3. 命中：只累加库存，其它字段不动；未命中：新建记录
func (s *service) Publish(ctx context.Context, params PublishParams) (*PublishResult, error) {
	// 1. 书名/作者校验
	if params.Title == "" {
		return nil, ErrEmptyTitle
	}
	if params.Author == "" {
		return nil, ErrEmptyAuthor
	}

	// 2. 品相校验
	if !params.Condition.IsValid() {
		return nil, ErrInvalidCondition
	}

	// 3. 卖家存在性校验（引用无法解析时按参数错误处理）
	if _, err := s.sellerRepo.FindByID(ctx, params.SellerID); err != nil {
		return nil, ErrSellerNotExists
	}

	added := params.Quantity
	if added == 0 {
		added = 1
	}

	// 4. 查找同卖家同书名同作者的已有记录
	existing, err := s.repo.FindBySellerTitleAuthor(ctx, params.SellerID, params.Title, params.Author)
	if err == nil {
		// 命中：合并补货，只更新库存数量
		// 本次提交的价格/分类/品相等字段被忽略，保持原值
		existing.Restock(added)
		if err := s.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		return &PublishResult{Book: existing, Restocked: true, Added: added}, nil
	}
	if err != ErrBookNotFound {
		return nil, err
	}

	// 5. 未命中：新建记录
	newBook := NewBook(params.SellerID, params.Title, params.Author, params.Category,
		params.Price, params.AvailabilityStatus, params.RentalOption,
		params.Condition, params.Quantity, params.ImageURL)
	if err := s.repo.Create(ctx, newBook); err != nil {
		return nil, err
	}

	return &PublishResult{Book: newBook, Restocked: false, Added: added}, nil
}

// GetByID 根据ID查询图书
func (s *service) GetByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// List 分页查询图书列表
func (s *service) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 10
	}
	return s.repo.List(ctx, params)
}

// Update 更新图书信息
func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.UpdateInfo(params); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
