package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明:集成测试辅助工具
// 集成测试使用真实的服务和数据库,验证完整链路:
// Handler → UseCase → Repository → MySQL
//
// 运行方式:
//   1. 启动依赖与服务: docker compose up -d && go run ./cmd/api
//   2. go test -v ./test/integration/...
// 服务未启动时整个测试包自动跳过。

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

var seq atomic.Int64

// RequireServer 检查服务是否可达,不可达时跳过测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://localhost:8080/ping")
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AuthorData 作者响应数据
type AuthorData struct {
	AuthorID uint    `json:"author_id"`
	Name     string  `json:"name"`
	Bio      *string `json:"bio"`
}

// GenreData 分类响应数据
type GenreData struct {
	GenreID     uint    `json:"genre_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// BookData 图书响应数据
type BookData struct {
	BookID          uint   `json:"book_id"`
	Title           string `json:"title"`
	AuthorID        uint   `json:"author_id"`
	GenreID         uint   `json:"genre_id"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
	AvailableCopies int    `json:"available_copies"`
}

// ReaderData 读者响应数据
type ReaderData struct {
	ReaderID  uint   `json:"reader_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// LoanData 借阅记录响应数据
type LoanData struct {
	LoanID     uint    `json:"loan_id"`
	BookID     uint    `json:"book_id"`
	ReaderID   uint    `json:"reader_id"`
	LoanDate   string  `json:"loan_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"`
	Status     string  `json:"status"`
}

// doJSON 发送HTTP请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPost, url, data)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}) *Response {
	return doJSON(t, http.MethodPut, url, data)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodGet, url, nil)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string) *Response {
	return doJSON(t, http.MethodDelete, url, nil)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 时间戳+自增序号,避免测试重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d_%d@test.com", prefix, time.Now().Unix(), seq.Add(1))
}

// GenerateTestISBN 生成唯一的测试ISBN(978前缀+10位数字)
func GenerateTestISBN() string {
	n := time.Now().UnixNano() + seq.Add(1)
	return fmt.Sprintf("978%010d", n%10000000000)
}

// CreateTestAuthor 创建测试作者并返回ID
func CreateTestAuthor(t *testing.T, name string) uint {
	resp := PostJSON(t, BaseURL+"/authors", map[string]interface{}{"name": name})
	require.Equal(t, 0, resp.Code, "创建作者失败: %s", resp.Message)

	var data AuthorData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.AuthorID
}

// CreateTestGenre 创建测试分类并返回ID
func CreateTestGenre(t *testing.T, name string) uint {
	resp := PostJSON(t, BaseURL+"/genres", map[string]interface{}{"name": name})
	require.Equal(t, 0, resp.Code, "创建分类失败: %s", resp.Message)

	var data GenreData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.GenreID
}

// CreateTestBook 登记测试图书并返回ID
func CreateTestBook(t *testing.T, authorID, genreID uint, copies int) uint {
	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":            "集成测试图书",
		"author_id":        authorID,
		"genre_id":         genreID,
		"isbn":             GenerateTestISBN(),
		"publication_year": 2020,
		"available_copies": copies,
	})
	require.Equal(t, 0, resp.Code, "登记图书失败: %s", resp.Message)

	var data BookData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.BookID
}

// CreateTestReader 注册测试读者并返回ID
func CreateTestReader(t *testing.T, prefix string) uint {
	resp := PostJSON(t, BaseURL+"/readers", map[string]interface{}{
		"first_name": "三",
		"last_name":  "张",
		"email":      GenerateTestEmail(prefix),
	})
	require.Equal(t, 0, resp.Code, "注册读者失败: %s", resp.Message)

	var data ReaderData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.ReaderID
}

// BorrowTestBook 借出图书并返回借阅记录ID
func BorrowTestBook(t *testing.T, bookID, readerID uint) uint {
	resp := PostJSON(t, BaseURL+"/loans", map[string]interface{}{
		"book_id":   bookID,
		"reader_id": readerID,
		"loan_date": "2026-08-01",
		"due_date":  "2026-08-15",
	})
	require.Equal(t, 0, resp.Code, "借书失败: %s", resp.Message)

	var data LoanData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.LoanID
}
