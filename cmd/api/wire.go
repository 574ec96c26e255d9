//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明:
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同,Wire在编译期生成代码
// 3. 优势:零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程:
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"gorm.io/gorm"

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
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load, // 加载配置文件
	mysql.NewDB, // 创建MySQL连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository, // 作者仓储
	mysql.NewGenreRepository,  // 分类仓储
	mysql.NewBookRepository,   // 图书仓储
	mysql.NewReaderRepository, // 读者仓储
	mysql.NewLoanRepository,   // 借阅仓储
	provideTxManager,          // 事务管理器(以接口形式提供给应用层)
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,

	appgenre.NewCreateGenreUseCase,
	appgenre.NewListGenresUseCase,
	appgenre.NewGetGenreUseCase,
	appgenre.NewDeleteGenreUseCase,

	appbook.NewCreateBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewDeleteBookUseCase,

	appreader.NewCreateReaderUseCase,
	appreader.NewListReadersUseCase,
	appreader.NewGetReaderUseCase,
	appreader.NewDeleteReaderUseCase,

	apploan.NewBorrowBookUseCase,
	apploan.NewReturnBookUseCase,
	apploan.NewListLoansUseCase,
	apploan.NewGetLoanUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewGenreHandler,
	handler.NewBookHandler,
	handler.NewReaderHandler,
	handler.NewLoanHandler,
)

// provideTxManager 从数据库连接创建事务管理器
// 教学要点:应用层依赖的是apploan.TxManager接口,
// Wire无法自动做接口绑定,这里通过自定义Provider完成
func provideTxManager(db *gorm.DB) apploan.TxManager {
	return mysql.NewTxManager(db)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	genreHandler *handler.GenreHandler,
	bookHandler *handler.BookHandler,
	readerHandler *handler.ReaderHandler,
	loanHandler *handler.LoanHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())

	// /ping、/metrics、/swagger与业务路由统一在registerRoutes中注册
	registerRoutes(r, authorHandler, genreHandler, bookHandler, readerHandler, loanHandler)

	return r
}

// InitializeApp 初始化整个应用
// wire.Build告诉Wire如何组装依赖链:
// *gin.Engine ← Handler ← UseCase ← Repository ← *gorm.DB ← *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)

	// 占位返回,实际代码由wire_gen.go生成
	return nil, nil
}
