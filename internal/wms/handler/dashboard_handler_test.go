package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/bitfantasy/nimo-wms/internal/wms/service"
	"github.com/bitfantasy/nimo-wms/internal/wms/testutil"
)

func setupDashboardTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, db)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1/dashboard")
	api.GET("/Summary", handlers.Dashboard.Summary)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func TestDashboardSummary(t *testing.T) {
	env := setupDashboardTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedInventoryRecord(t, env.DB, &entity.InventoryRecord{
		ID: "8c61e6e6-3333-0000-0000-000000000001", ReferenceNumber: "REF-A",
		ProductName: "A", ProductSKU: "SKU-A", ProductQuantity: "10",
		ProductStatus: entity.ProductStatusAvailable,
	})
	testutil.SeedInventoryRecord(t, env.DB, &entity.InventoryRecord{
		ID: "8c61e6e6-3333-0000-0000-000000000002", ReferenceNumber: "REF-B",
		ProductName: "B", ProductSKU: "SKU-B", ProductQuantity: "3",
		ProductStatus: entity.ProductStatusLowStock,
	})
	// Draft 不应计入任何桶
	testutil.SeedInventoryRecord(t, env.DB, &entity.InventoryRecord{
		ID: "8c61e6e6-3333-0000-0000-000000000003", ReferenceNumber: "REF-C",
		ProductName: "C", ProductSKU: "SKU-C", ProductQuantity: "99",
		ProductStatus: entity.ProductStatusDraft,
	})

	reorder := &entity.ReorderRecord{
		ID: "8c61e6e6-3333-0000-0000-000000000011", ReferenceNumber: "REORDER-ID-1",
		ProductSKU: "SKU-A", ProductName: "A", ReorderLevel: "25",
		LastOrderDate: "2026-03-01", LeadTime: "2026-03-05",
		Status: entity.ReorderStatusActive,
	}
	if err := env.DB.Create(reorder).Error; err != nil {
		t.Fatalf("failed to seed reorder record: %v", err)
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/dashboard/Summary", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})

	stock := data["Stock"].(map[string]interface{})
	if stock["TotalAvailable"].(float64) != 10 {
		t.Fatalf("expected TotalAvailable 10, got %v", stock["TotalAvailable"])
	}
	if stock["LowStock"].(float64) != 3 {
		t.Fatalf("expected LowStock 3, got %v", stock["LowStock"])
	}
	if stock["OutOfStock"].(float64) != 0 {
		t.Fatalf("expected OutOfStock 0, got %v", stock["OutOfStock"])
	}

	reorderSum := data["Reorder"].(map[string]interface{})
	if reorderSum["TotalReorderLevel"].(float64) != 25 {
		t.Fatalf("expected TotalReorderLevel 25, got %v", reorderSum["TotalReorderLevel"])
	}
	top := reorderSum["TopItems"].([]interface{})
	if len(top) != 1 {
		t.Fatalf("expected 1 top item, got %d", len(top))
	}

	leadTimes := data["LeadTimes"].([]interface{})
	if len(leadTimes) != 1 {
		t.Fatalf("expected 1 lead-time row, got %d", len(leadTimes))
	}
	row := leadTimes[0].(map[string]interface{})
	if row["ReferenceNumber"] != "REORDER-ID-1" {
		t.Fatalf("unexpected lead-time row: %v", row)
	}
}
