package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/bitfantasy/nimo-wms/internal/wms/service"
	"github.com/bitfantasy/nimo-wms/internal/wms/testutil"
)

func setupInventoryTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, db)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/inventory")
	api.POST("/CreateData", handlers.Inventory.CreateData)
	api.PUT("/EditData", handlers.Inventory.EditData)
	api.DELETE("/DeleteData", handlers.Inventory.DeleteData)
	api.GET("/FetchData", handlers.Inventory.FetchData)
	api.GET("/FetchProduct", handlers.Inventory.FetchProduct)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func TestInventoryCreateDefaults(t *testing.T) {
	env := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/CreateData", map[string]interface{}{
		"ProductName":     "测试商品",
		"ProductSKU":      "SKU-001",
		"ProductQuantity": "15",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if !strings.HasPrefix(data["ReferenceNumber"].(string), "REF-") {
		t.Fatalf("expected REF- reference number, got %v", data["ReferenceNumber"])
	}
	if data["ProductStatus"] != entity.ProductStatusDraft {
		t.Fatalf("expected default status Draft, got %v", data["ProductStatus"])
	}
}

func TestInventoryCreateMissingSKU(t *testing.T) {
	env := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/inventory/CreateData", map[string]interface{}{
		"ProductName": "测试商品",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 10001 {
		t.Fatalf("expected code 10001, got %v", resp["code"])
	}
}

// FetchProduct：带商品名做大小写不敏感精确匹配，不带名字返回名称列表
func TestInventoryFetchProduct(t *testing.T) {
	env := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	rec := &entity.InventoryRecord{
		ID:              "8c61e6e6-2222-0000-0000-000000000001",
		ReferenceNumber: "REF-SEED-1",
		ProductName:     "Blue Widget",
		ProductSKU:      "SKU-001",
		ProductQuantity: "40",
		ProductStatus:   entity.ProductStatusAvailable,
	}
	testutil.SeedInventoryRecord(t, env.DB, rec)

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/inventory/FetchProduct?ProductName=blue%20widget", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["ProductSKU"] != "SKU-001" {
		t.Fatalf("expected SKU-001, got %v", data["ProductSKU"])
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/inventory/FetchProduct", nil, token)
	names := testutil.ParseResponse(w)["data"].([]interface{})
	if len(names) != 1 || names[0] != "Blue Widget" {
		t.Fatalf("unexpected product name list: %v", names)
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/inventory/FetchProduct?ProductName=missing", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInventoryListFilterByStatus(t *testing.T) {
	env := setupInventoryTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedInventoryRecord(t, env.DB, &entity.InventoryRecord{
		ID: "8c61e6e6-2222-0000-0000-000000000011", ReferenceNumber: "REF-A",
		ProductName: "A", ProductSKU: "SKU-A", ProductStatus: entity.ProductStatusAvailable,
	})
	testutil.SeedInventoryRecord(t, env.DB, &entity.InventoryRecord{
		ID: "8c61e6e6-2222-0000-0000-000000000012", ReferenceNumber: "REF-B",
		ProductName: "B", ProductSKU: "SKU-B", ProductStatus: entity.ProductStatusLowStock,
	})

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/inventory/FetchData?status=Low-Stock", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	list := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if list["total"].(float64) != 1 {
		t.Fatalf("expected 1 low-stock record, got %v", list["total"])
	}
	items := list["items"].([]interface{})
	if items[0].(map[string]interface{})["ProductSKU"] != "SKU-B" {
		t.Fatalf("unexpected record: %v", items[0])
	}
}
