//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式：
//   wire gen ./cmd/api
// 生成wire_gen.go后，main.go可切换为调用InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/pratikmusmade/bookmart/internal/application/book"
	apporder "github.com/pratikmusmade/bookmart/internal/application/order"
	apprequest "github.com/pratikmusmade/bookmart/internal/application/request"
	appreview "github.com/pratikmusmade/bookmart/internal/application/review"
	appseller "github.com/pratikmusmade/bookmart/internal/application/seller"
	appuser "github.com/pratikmusmade/bookmart/internal/application/user"
	"github.com/pratikmusmade/bookmart/internal/domain/book"
	"github.com/pratikmusmade/bookmart/internal/domain/order"
	"github.com/pratikmusmade/bookmart/internal/domain/request"
	"github.com/pratikmusmade/bookmart/internal/domain/review"
	"github.com/pratikmusmade/bookmart/internal/domain/seller"
	"github.com/pratikmusmade/bookmart/internal/domain/user"
	"github.com/pratikmusmade/bookmart/internal/infrastructure/config"
	"github.com/pratikmusmade/bookmart/internal/infrastructure/persistence/mysql"
	"github.com/pratikmusmade/bookmart/internal/infrastructure/persistence/redis"
	"github.com/pratikmusmade/bookmart/internal/interface/http/handler"
	"github.com/pratikmusmade/bookmart/internal/interface/http/middleware"
	"github.com/pratikmusmade/bookmart/pkg/jwt"
	"github.com/pratikmusmade/bookmart/pkg/metrics"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,       // 加载配置文件
	mysql.NewDB,       // 创建MySQL连接
	redis.NewClient,   // 创建Redis连接
	newEventPublisher, // 创建事件发布器（见main.go）
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewSellerRepository,
	mysql.NewBookRepository,
	mysql.NewOrderRepository,
	mysql.NewReviewRepository,
	mysql.NewRequestRepository,
	mysql.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	seller.NewService,
	book.NewService,
	order.NewService,
	review.NewService,
	request.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewSetSellerUseCase,
	appuser.NewManageUsersUseCase,
	appseller.NewCreateSellerUseCase,
	appseller.NewManageSellersUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewBrowseBooksUseCase,
	appbook.NewManageBooksUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewManageOrdersUseCase,
	appreview.NewReviewUseCase,
	apprequest.NewRequestUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewSellerHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
	handler.NewReviewHandler,
	handler.NewRequestHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎
// 路由注册复用main.go中的registerRoutes，避免两套路由表漂移
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	sellerHandler *handler.SellerHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	reviewHandler *handler.ReviewHandler,
	requestHandler *handler.RequestHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.Default()
	registerRoutes(r, userHandler, sellerHandler, bookHandler, orderHandler, reviewHandler, requestHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用
// Wire在编译期分析依赖链并生成初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
