package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/library/docs"
	appauthor "github.com/xiebiao/library/internal/application/author"
	appbook "github.com/xiebiao/library/internal/application/book"
	appgenre "github.com/xiebiao/library/internal/application/genre"
	apploan "github.com/xiebiao/library/internal/application/loan"
	appreader "github.com/xiebiao/library/internal/application/reader"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// @title        图书馆借阅管理API
// @version      1.0
// @description  图书馆记录管理服务:作者、分类、图书、读者与借阅记录
// @BasePath     /

// main 主程序入口
// 说明:手动依赖注入,与wire.go中的声明保持一致
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

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 依赖注入(手动组装)
	// 依赖链:Repository ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	genreRepo := mysql.NewGenreRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	readerRepo := mysql.NewReaderRepository(db)
	loanRepo := mysql.NewLoanRepository(db)
	txManager := mysql.NewTxManager(db)

	// 应用层
	createAuthorUseCase := appauthor.NewCreateAuthorUseCase(authorRepo)
	listAuthorsUseCase := appauthor.NewListAuthorsUseCase(authorRepo)
	getAuthorUseCase := appauthor.NewGetAuthorUseCase(authorRepo)
	deleteAuthorUseCase := appauthor.NewDeleteAuthorUseCase(authorRepo, bookRepo)

	createGenreUseCase := appgenre.NewCreateGenreUseCase(genreRepo)
	listGenresUseCase := appgenre.NewListGenresUseCase(genreRepo)
	getGenreUseCase := appgenre.NewGetGenreUseCase(genreRepo)
	deleteGenreUseCase := appgenre.NewDeleteGenreUseCase(genreRepo, bookRepo)

	createBookUseCase := appbook.NewCreateBookUseCase(bookRepo, authorRepo, genreRepo)
	listBooksUseCase := appbook.NewListBooksUseCase(bookRepo)
	getBookUseCase := appbook.NewGetBookUseCase(bookRepo)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookRepo, loanRepo)

	createReaderUseCase := appreader.NewCreateReaderUseCase(readerRepo)
	listReadersUseCase := appreader.NewListReadersUseCase(readerRepo)
	getReaderUseCase := appreader.NewGetReaderUseCase(readerRepo)
	deleteReaderUseCase := appreader.NewDeleteReaderUseCase(readerRepo, loanRepo)

	borrowBookUseCase := apploan.NewBorrowBookUseCase(loanRepo, bookRepo, readerRepo, txManager)
	returnBookUseCase := apploan.NewReturnBookUseCase(loanRepo, bookRepo, txManager)
	listLoansUseCase := apploan.NewListLoansUseCase(loanRepo)
	getLoanUseCase := apploan.NewGetLoanUseCase(loanRepo)

	// 接口层
	authorHandler := handler.NewAuthorHandler(createAuthorUseCase, listAuthorsUseCase, getAuthorUseCase, deleteAuthorUseCase)
	genreHandler := handler.NewGenreHandler(createGenreUseCase, listGenresUseCase, getGenreUseCase, deleteGenreUseCase)
	bookHandler := handler.NewBookHandler(createBookUseCase, listBooksUseCase, getBookUseCase, deleteBookUseCase)
	readerHandler := handler.NewReaderHandler(createReaderUseCase, listReadersUseCase, getReaderUseCase, deleteReaderUseCase)
	loanHandler := handler.NewLoanHandler(borrowBookUseCase, returnBookUseCase, listLoansUseCase, getLoanUseCase)

	// 4. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())

	// 5. 注册路由
	registerRoutes(r, authorHandler, genreHandler, bookHandler, readerHandler, loanHandler)

	// 6. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功!\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标:     http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	authorHandler *handler.AuthorHandler,
	genreHandler *handler.GenreHandler,
	bookHandler *handler.BookHandler,
	readerHandler *handler.ReaderHandler,
	loanHandler *handler.LoanHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.POST("", authorHandler.CreateAuthor)
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.DELETE("/:id", authorHandler.DeleteAuthor)
		}

		// 分类模块
		genres := v1.Group("/genres")
		{
			genres.POST("", genreHandler.CreateGenre)
			genres.GET("", genreHandler.ListGenres)
			genres.GET("/:id", genreHandler.GetGenre)
			genres.DELETE("/:id", genreHandler.DeleteGenre)
		}

		// 图书模块
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.CreateBook)
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}

		// 读者模块
		readers := v1.Group("/readers")
		{
			readers.POST("", readerHandler.CreateReader)
			readers.GET("", readerHandler.ListReaders)
			readers.GET("/:id", readerHandler.GetReader)
			readers.DELETE("/:id", readerHandler.DeleteReader)
		}

		// 借阅模块(借阅记录只增不删)
		loans := v1.Group("/loans")
		{
			loans.POST("", loanHandler.BorrowBook)
			loans.GET("", loanHandler.ListLoans)
			loans.GET("/:id", loanHandler.GetLoan)
			loans.PUT("/:id/return", loanHandler.ReturnBook)
		}
	}
}
