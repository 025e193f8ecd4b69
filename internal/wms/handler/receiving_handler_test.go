package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/bitfantasy/nimo-wms/internal/wms/service"
	"github.com/bitfantasy/nimo-wms/internal/wms/testutil"
)

func setupReceivingTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, db)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/receiving")
	api.POST("/CreateData", handlers.Receiving.CreateData)
	api.PUT("/EditData", handlers.Receiving.EditData)
	api.DELETE("/DeleteData", handlers.Receiving.DeleteData)
	api.GET("/FetchData", handlers.Receiving.FetchData)
	api.PUT("/UpdateStatus", handlers.Receiving.UpdateStatus)
	api.POST("/PostInventoryData", handlers.Receiving.PostInventoryData)
	api.GET("/FetchPO", handlers.Receiving.FetchPO)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func createReceivingViaAPI(t *testing.T, env *testutil.TestEnv, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/receiving/CreateData", body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestReceivingCreateAndFetch(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	data := createReceivingViaAPI(t, env, token, map[string]interface{}{
		"ProductSKU":      "SKU-001",
		"ProductName":     "测试商品",
		"ProductQuantity": "120",
		"SupplierName":    "供应商A",
	})

	if data["ReferenceNumber"].(string) == "" {
		t.Fatal("reference number should be generated")
	}
	if data["ReceivedStatus"] != entity.ReceivedStatusPending {
		t.Fatalf("expected default status %q, got %v", entity.ReceivedStatusPending, data["ReceivedStatus"])
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/receiving/FetchData", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	list := resp["data"].(map[string]interface{})
	if list["total"].(float64) != 1 {
		t.Fatalf("expected 1 record, got %v", list["total"])
	}
}

// 编辑是整单替换，但参考号必须保持创建时的值
func TestReceivingEditPreservesReferenceNumber(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	data := createReceivingViaAPI(t, env, token, map[string]interface{}{
		"ProductSKU":  "SKU-001",
		"ProductName": "测试商品",
	})
	id := data["id"].(string)
	refNum := data["ReferenceNumber"].(string)

	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/receiving/EditData", map[string]interface{}{
		"id":              id,
		"ReferenceNumber": "REC-HACKED-999",
		"ProductSKU":      "SKU-001",
		"ProductName":     "改名商品",
		"ProductQuantity": "99",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	updated := resp["data"].(map[string]interface{})
	if updated["ReferenceNumber"] != refNum {
		t.Fatalf("reference number changed on edit: %v -> %v", refNum, updated["ReferenceNumber"])
	}
	if updated["ProductName"] != "改名商品" {
		t.Fatalf("expected updated name, got %v", updated["ProductName"])
	}
}

func TestReceivingEditUnknownID(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/receiving/EditData", map[string]interface{}{
		"id":          "8c61e6e6-0000-0000-0000-000000000000",
		"ProductSKU":  "SKU-001",
		"ProductName": "测试商品",
	}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 10002 {
		t.Fatalf("expected code 10002, got %v", resp["code"])
	}
}

// 删除不存在的单据也返回成功
func TestReceivingDeleteMissingSucceeds(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodDelete, "/api/v1/receiving/DeleteData", map[string]interface{}{
		"id": "8c61e6e6-0000-0000-0000-000000000000",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReceivingUpdateStatusValidation(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	// 缺 ReceivedStatus
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/receiving/UpdateStatus", map[string]interface{}{
		"id": "some-id",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// 缺 id
	w = testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/receiving/UpdateStatus", map[string]interface{}{
		"ReceivedStatus": entity.ReceivedStatusApproved,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// 未知 id
	w = testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/receiving/UpdateStatus", map[string]interface{}{
		"id":             "8c61e6e6-0000-0000-0000-000000000000",
		"ReceivedStatus": entity.ReceivedStatusApproved,
	}, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReceivingPostToInventory(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	data := createReceivingViaAPI(t, env, token, map[string]interface{}{
		"ProductSKU":      "SKU-001",
		"ProductName":     "测试商品",
		"ProductQuantity": "120",
		"ReceivedStatus":  entity.ReceivedStatusApproved,
	})
	id := data["id"].(string)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/receiving/PostInventoryData", map[string]interface{}{
		"id": id,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	inv := resp["data"].(map[string]interface{})
	if inv["ProductStatus"] != entity.ProductStatusAvailable {
		t.Fatalf("expected Available, got %v", inv["ProductStatus"])
	}
	if inv["ProductQuantity"] != "120" {
		t.Fatalf("quantity should carry over verbatim, got %v", inv["ProductQuantity"])
	}
	if inv["ProductCostPrice"] != "0" || inv["ProductSellingPrice"] != "0" {
		t.Fatalf("prices should initialize to 0, got %v / %v", inv["ProductCostPrice"], inv["ProductSellingPrice"])
	}

	var rec entity.ReceivingRecord
	if err := env.DB.First(&rec, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload receiving record: %v", err)
	}
	if rec.ReceivedStatus != entity.ReceivedStatusPosted {
		t.Fatalf("expected Posted, got %s", rec.ReceivedStatus)
	}
}

// 重复过账必须幂等：只产生一条库存记录，重放返回同一条
func TestReceivingPostToInventoryIdempotent(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	data := createReceivingViaAPI(t, env, token, map[string]interface{}{
		"ProductSKU":     "SKU-001",
		"ProductName":    "测试商品",
		"ReceivedStatus": entity.ReceivedStatusApproved,
	})
	id := data["id"].(string)

	w1 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/receiving/PostInventoryData", map[string]interface{}{"id": id}, token)
	if w1.Code != http.StatusOK {
		t.Fatalf("first post: expected 200, got %d: %s", w1.Code, w1.Body.String())
	}
	w2 := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/receiving/PostInventoryData", map[string]interface{}{"id": id}, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("second post: expected 200, got %d: %s", w2.Code, w2.Body.String())
	}

	first := testutil.ParseResponse(w1)["data"].(map[string]interface{})
	second := testutil.ParseResponse(w2)["data"].(map[string]interface{})
	if first["id"] != second["id"] {
		t.Fatalf("replay returned a different inventory record: %v vs %v", first["id"], second["id"])
	}

	var count int64
	env.DB.Model(&entity.InventoryRecord{}).Where("source_receiving_id = ?", id).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly 1 inventory record, got %d", count)
	}
}

// 未审批的收货单不允许过账
func TestReceivingPostToInventoryRequiresApproved(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	data := createReceivingViaAPI(t, env, token, map[string]interface{}{
		"ProductSKU":  "SKU-001",
		"ProductName": "测试商品",
	})
	id := data["id"].(string)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/receiving/PostInventoryData", map[string]interface{}{"id": id}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.InventoryRecord{}).Count(&count)
	if count != 0 {
		t.Fatalf("no inventory record should exist, got %d", count)
	}
}

func TestReceivingFetchPO(t *testing.T) {
	env := setupReceivingTest(t)
	token := testutil.DefaultTestToken()

	po := &entity.PurchaseOrderRecord{
		ID:           "8c61e6e6-1111-0000-0000-000000000001",
		PONumber:     "PO-2026-001",
		SupplierName: "供应商A",
		ItemName:     "测试商品",
	}
	if err := env.DB.Create(po).Error; err != nil {
		t.Fatalf("failed to seed purchase order: %v", err)
	}

	// 按 PO 号查询
	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/receiving/FetchPO?PONumber=PO-2026-001", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["SupplierName"] != "供应商A" {
		t.Fatalf("expected supplier brought in, got %v", data["SupplierName"])
	}

	// 不带 PO 号返回号码列表
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/receiving/FetchPO", nil, token)
	resp = testutil.ParseResponse(w)
	numbers := resp["data"].([]interface{})
	if len(numbers) != 1 || numbers[0] != "PO-2026-001" {
		t.Fatalf("unexpected PO number list: %v", numbers)
	}

	// 未知 PO 号
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/receiving/FetchPO?PONumber=PO-NOPE", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReceivingRequiresAuth(t *testing.T) {
	env := setupReceivingTest(t)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/receiving/FetchData", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}
