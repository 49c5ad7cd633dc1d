package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	"github.com/pratikmusmade/bookmart/pkg/mq"
	"github.com/pratikmusmade/bookmart/pkg/response"
)

// @title           BookMart API
// @version         1.0
// @description     二手书交易平台后端服务
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

// main 主程序入口
// 说明：手动依赖注入（Wire版本见wire.go，运行wire gen后切换到InitializeApp）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 初始化指标与事件发布器
	metrics.InitMetrics()
	publisher := newEventPublisher(cfg)
	defer publisher.Close()

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	sellerRepo := mysql.NewSellerRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	requestRepo := mysql.NewRequestRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	sellerService := seller.NewService(sellerRepo)
	bookService := book.NewService(bookRepo, sellerRepo)
	orderService := order.NewService(orderRepo, bookRepo)
	reviewService := review.NewService(reviewRepo, bookRepo)
	requestService := request.NewService(requestRepo, sellerRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(jwtManager, sessionStore)
	setSellerUseCase := appuser.NewSetSellerUseCase(userService)
	manageUsersUseCase := appuser.NewManageUsersUseCase(userService)
	createSellerUseCase := appseller.NewCreateSellerUseCase(sellerService)
	manageSellersUseCase := appseller.NewManageSellersUseCase(sellerService, sellerRepo, bookRepo, orderRepo, reviewRepo, txManager)
	publishBookUseCase := appbook.NewPublishBookUseCase(bookService, publisher)
	browseBooksUseCase := appbook.NewBrowseBooksUseCase(bookService)
	manageBooksUseCase := appbook.NewManageBooksUseCase(bookService, bookRepo, orderRepo, reviewRepo, txManager)
	createOrderUseCase := apporder.NewCreateOrderUseCase(orderService, publisher)
	manageOrdersUseCase := apporder.NewManageOrdersUseCase(orderService, orderRepo)
	reviewUseCase := appreview.NewReviewUseCase(reviewService, reviewRepo)
	requestUseCase := apprequest.NewRequestUseCase(requestService, requestRepo, publisher)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, setSellerUseCase, manageUsersUseCase)
	sellerHandler := handler.NewSellerHandler(createSellerUseCase, manageSellersUseCase)
	bookHandler := handler.NewBookHandler(publishBookUseCase, browseBooksUseCase, manageBooksUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, manageOrdersUseCase)
	reviewHandler := handler.NewReviewHandler(reviewUseCase)
	requestHandler := handler.NewRequestHandler(requestUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 7. 注册路由
	registerRoutes(r, userHandler, sellerHandler, bookHandler, orderHandler, reviewHandler, requestHandler, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// newEventPublisher 创建事件发布器
// 未配置MQ地址或连接失败时降级为空实现，不阻塞服务启动
func newEventPublisher(cfg *config.Config) mq.EventPublisher {
	if cfg.MQ.URL == "" {
		log.Println("未配置RabbitMQ地址，事件发布使用空实现")
		return mq.NewNoopPublisher()
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
	if err != nil {
		log.Printf("连接RabbitMQ失败，事件发布降级为空实现: %v", err)
		return mq.NewNoopPublisher()
	}
	return publisher
}

// registerRoutes 注册路由
// 权限约定：注册/登录与评价、求书单的浏览接口开放；用户管理仅限管理员；其余需登录
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	sellerHandler *handler.SellerHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	reviewHandler *handler.ReviewHandler,
	requestHandler *handler.RequestHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// HTTP指标采集
	r.Use(metrics.HTTPMiddleware())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 公开接口
		v1.POST("/register", userHandler.Register)
		v1.POST("/login", userHandler.Login)

		// 评价与求书单的浏览接口开放访问；
		// 带Token访问时注入用户信息，匿名访问照常放行
		browse := v1.Group("")
		browse.Use(authMiddleware.OptionalAuth())
		{
			browse.GET("/reviews", reviewHandler.List)
			browse.GET("/reviews/:id", reviewHandler.Get)
			browse.GET("/request", requestHandler.List)
			browse.GET("/request/:id", requestHandler.Get)
		}

		// 用户管理（仅管理员）
		users := v1.Group("/users")
		users.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// 需要登录的路由
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireAuth())
		{
			authorized.POST("/logout", userHandler.Logout)
			authorized.POST("/set-seller", userHandler.SetSeller)

			// 卖家模块
			authorized.POST("/seller", sellerHandler.Create)
			authorized.GET("/seller", sellerHandler.List)
			authorized.GET("/seller/:id", sellerHandler.Get)
			authorized.PUT("/seller/:id", sellerHandler.Update)
			authorized.DELETE("/seller/:id", sellerHandler.Delete)
			authorized.GET("/sellers/:user_id", sellerHandler.ListByUser)

			// 图书模块
			authorized.POST("/books", bookHandler.Publish)
			authorized.GET("/books", bookHandler.List)
			authorized.GET("/books/:id", bookHandler.Get)
			authorized.PUT("/books/:id", bookHandler.Update)
			authorized.DELETE("/books/:id", bookHandler.Delete)

			// 订单模块
			authorized.POST("/orders", orderHandler.Create)
			authorized.GET("/orders", orderHandler.List)
			authorized.GET("/orders/:id", orderHandler.Get)
			authorized.PUT("/orders/:id", orderHandler.Update)
			authorized.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
			authorized.DELETE("/orders/:id", orderHandler.Delete)

			// 评价写操作
			authorized.POST("/reviews", reviewHandler.Create)
			authorized.PUT("/reviews/:id", reviewHandler.Update)
			authorized.DELETE("/reviews/:id", reviewHandler.Delete)

			// 求书单写操作
			authorized.POST("/request", requestHandler.Create)
			authorized.PUT("/request/:id", requestHandler.Update)
			authorized.DELETE("/request/:id", requestHandler.Delete)
		}
	}
}
