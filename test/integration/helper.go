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

// 集成测试辅助工具
// 运行前需要启动完整环境（MySQL、Redis、API服务）：
//   go run ./cmd/api
//   go test -v ./test/integration/...

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// seq 进程内序号，与时间戳一起保证测试数据唯一
var seq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// UserData 用户响应数据
type UserData struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsSeller bool   `json:"is_seller"`
	IsAdmin  bool   `json:"is_admin"`
}

// LoginData 登录响应数据
type LoginData struct {
	User         UserData `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

// SellerData 卖家响应数据
type SellerData struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	ShopName       string `json:"shop_name"`
	GSTIN          string `json:"gstin"`
	ApprovedStatus bool   `json:"approved_status"`
}

// BookData 图书响应数据
type BookData struct {
	ID                 uint   `json:"id"`
	SellerID           uint   `json:"seller_id"`
	Title              string `json:"title"`
	Author             string `json:"author"`
	Category           string `json:"category"`
	Price              int64  `json:"price"`
	AvailabilityStatus bool   `json:"availability_status"`
	Condition          string `json:"condition"`
	Quantity           uint   `json:"quantity"`
}

// PublishData 上架响应数据（含合并标记）
type PublishData struct {
	Book      BookData `json:"book"`
	Restocked bool     `json:"restocked"`
}

// OrderData 订单响应数据
type OrderData struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	BookID      uint   `json:"book_id"`
	TotalAmount int64  `json:"total_amount"`
	Status      string `json:"status"`
}

// ReviewData 评价响应数据
type ReviewData struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	BookID  uint   `json:"book_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// RequestData 求书单响应数据
type RequestData struct {
	ID               uint   `json:"id"`
	UserID           uint   `json:"user_id"`
	BookTitle        string `json:"book_title"`
	Author           string `json:"author"`
	Status           string `json:"status"`
	RequestStatus    string `json:"request_status"`
	AcceptedSellerID *uint  `json:"accepted_seller_id"`
}

// PageData 分页响应数据
type PageData struct {
	List     json.RawMessage `json:"list"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// doJSON 发送HTTP请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// PatchJSON 发送PATCH请求
func PatchJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPatch, url, data, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// GenerateTestUsername 生成唯一的测试用户名
func GenerateTestUsername(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().Unix(), nextSeq())
}

// GenerateTestGSTIN 生成唯一的15位测试GSTIN
// 格式要求15位大写字母或数字，这里用纯数字即可满足
func GenerateTestGSTIN() string {
	n := uint64(time.Now().UnixNano())%1e13*100 + nextSeq()%100
	return fmt.Sprintf("%015d", n)
}

// RegisterTestUser 注册测试用户并登录，返回用户ID与Token
func RegisterTestUser(t *testing.T, prefix string) (uint, string) {
	t.Helper()

	username := GenerateTestUsername(prefix)
	registerReq := map[string]string{
		"username": username,
		"email":    username + "@test.com",
		"password": "Test1234",
	}

	registerResp := PostJSON(t, BaseURL+"/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"username": username,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return loginData.User.ID, loginData.AccessToken
}

// CreateTestSeller 创建测试卖家店铺，返回卖家ID
func CreateTestSeller(t *testing.T, token, shopName string) uint {
	t.Helper()

	sellerReq := map[string]string{
		"shop_name": shopName,
		"gstin":     GenerateTestGSTIN(),
	}

	resp := PostJSON(t, BaseURL+"/seller", sellerReq, token)
	require.Equal(t, 0, resp.Code, "创建卖家失败: %s", resp.Message)

	var data SellerData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析卖家响应失败")

	return data.ID
}

// PublishTestBook 上架测试图书，返回上架结果
func PublishTestBook(t *testing.T, token string, sellerID uint, title, author string, quantity uint) PublishData {
	t.Helper()

	bookReq := map[string]interface{}{
		"seller_id": sellerID,
		"title":     title,
		"author":    author,
		"category":  "测试分类",
		"price":     5900,
		"condition": "used",
		"quantity":  quantity,
	}

	resp := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, resp.Code, "图书上架失败: %s", resp.Message)

	var data PublishData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析上架响应失败")

	return data
}
