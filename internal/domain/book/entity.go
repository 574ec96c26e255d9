package book

import "time"

// Book 图书实体（聚合根）
//
// 设计说明:
// 1. AvailableCopies是库存台账字段:它始终等于(馆藏总数 - 未归还借阅数)
//   - 系统不单独记录馆藏总数,只维护这个增量计数
//   - 因此归还时的+1没有上限约束(这是刻意保留的设计缺口,不在此处"顺手修复")
// 2. 只有借阅生命周期的两个操作(借出/归还)允许修改AvailableCopies,
//    每次修改都是±1,且与借阅记录的写入处于同一事务
// 3. ISBN是业务唯一标识(自然键),用于防止重复录入
type Book struct {
	ID              uint
	Title           string
	AuthorID        uint
	GenreID         uint
	ISBN            string
	PublicationYear int
	AvailableCopies int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书（工厂方法）
func NewBook(title string, authorID, genreID uint, isbn string, publicationYear, availableCopies int) *Book {
	now := time.Now()
	return &Book{
		Title:           title,
		AuthorID:        authorID,
		GenreID:         genreID,
		ISBN:            isbn,
		PublicationYear: publicationYear,
		AvailableCopies: availableCopies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate 验证图书实体
// 业务规则验证在领域层完成,数据库约束只是最后一道防线
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrTitleRequired
	}
	if b.AuthorID == 0 {
		return ErrAuthorIDRequired
	}
	if b.GenreID == 0 {
		return ErrGenreIDRequired
	}
	if b.ISBN == "" {
		return ErrISBNRequired
	}
	// ISBN格式校验(简化版):10位或13位,允许连字符
	if len(b.ISBN) < 10 || len(b.ISBN) > 20 {
		return ErrInvalidISBN
	}
	if b.PublicationYear < 0 {
		return ErrInvalidYear
	}
	if b.AvailableCopies < 0 {
		return ErrNegativeCopies
	}
	return nil
}

// CanLend 判断当前是否还有可借副本
// 借出前的业务规则校验:必须在行锁定之后调用,否则并发下会超借
func (b *Book) CanLend() bool {
	return b.AvailableCopies > 0
}

// IsOutOfStock 判断是否已无可借副本
func (b *Book) IsOutOfStock() bool {
	return b.AvailableCopies <= 0
}
