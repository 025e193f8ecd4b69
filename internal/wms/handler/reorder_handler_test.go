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

func setupReorderTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, db)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/reorders")
	api.POST("/CreateData", handlers.Reorder.CreateData)
	api.GET("/FetchData", handlers.Reorder.FetchData)
	api.GET("/FetchSupplier", handlers.Reorder.FetchSupplier)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func TestReorderCreateDefaults(t *testing.T) {
	env := setupReorderTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/reorders/CreateData", map[string]interface{}{
		"ProductSKU":   "SKU-001",
		"ProductName":  "测试商品",
		"ReorderLevel": "25",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if !strings.HasPrefix(data["ReferenceNumber"].(string), "REORDER-ID-") {
		t.Fatalf("expected REORDER-ID- reference number, got %v", data["ReferenceNumber"])
	}
	if data["Status"] != entity.ReorderStatusActive {
		t.Fatalf("expected default status Active, got %v", data["Status"])
	}
}

// FetchSupplier：带名字带出供应商档案，不带名字返回名称列表
func TestReorderFetchSupplier(t *testing.T) {
	env := setupReorderTest(t)
	token := testutil.DefaultTestToken()

	sup := &entity.SupplierRecord{
		ID:              "8c61e6e6-4444-0000-0000-000000000001",
		ReferenceNumber: "SUP-SEED-1",
		SupplierName:    "Acme Trading",
		ContactPerson:   "张三",
		Status:          entity.SupplierStatusActive,
	}
	if err := env.DB.Create(sup).Error; err != nil {
		t.Fatalf("failed to seed supplier: %v", err)
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/reorders/FetchSupplier?SupplierName=acme%20trading", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["ContactPerson"] != "张三" {
		t.Fatalf("expected contact brought in, got %v", data["ContactPerson"])
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/reorders/FetchSupplier", nil, token)
	names := testutil.ParseResponse(w)["data"].([]interface{})
	if len(names) != 1 || names[0] != "Acme Trading" {
		t.Fatalf("unexpected supplier name list: %v", names)
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/reorders/FetchSupplier?SupplierName=missing", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
