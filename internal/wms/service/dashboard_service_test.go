package service

import (
	"testing"
	"time"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
)

func TestSummarizeStockBuckets(t *testing.T) {
	items := []entity.InventoryRecord{
		{ProductQuantity: "10", ProductStatus: entity.ProductStatusAvailable},
		{ProductQuantity: "2.5", ProductStatus: entity.ProductStatusAvailable},
		{ProductQuantity: "3", ProductStatus: entity.ProductStatusLowStock},
		{ProductQuantity: "7", ProductStatus: entity.ProductStatusNoStock},
	}

	sum := SummarizeStock(items)
	if sum.TotalAvailable != 12.5 {
		t.Fatalf("expected TotalAvailable 12.5, got %v", sum.TotalAvailable)
	}
	if sum.LowStock != 3 {
		t.Fatalf("expected LowStock 3, got %v", sum.LowStock)
	}
	if sum.OutOfStock != 7 {
		t.Fatalf("expected OutOfStock 7, got %v", sum.OutOfStock)
	}
}

// Draft 等状态外的记录不得进入任何桶
func TestSummarizeStockIgnoresOtherStatuses(t *testing.T) {
	items := []entity.InventoryRecord{
		{ProductQuantity: "100", ProductStatus: entity.ProductStatusDraft},
		{ProductQuantity: "50", ProductStatus: "Discontinued"},
		{ProductQuantity: "1", ProductStatus: entity.ProductStatusAvailable},
	}

	sum := SummarizeStock(items)
	if sum.TotalAvailable != 1 || sum.LowStock != 0 || sum.OutOfStock != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

// 非数字文本按 0 计，不报错也不跳过记录
func TestSummarizeStockNonNumericQuantity(t *testing.T) {
	items := []entity.InventoryRecord{
		{ProductQuantity: "abc", ProductStatus: entity.ProductStatusAvailable},
		{ProductQuantity: "", ProductStatus: entity.ProductStatusAvailable},
		{ProductQuantity: "5", ProductStatus: entity.ProductStatusAvailable},
	}

	sum := SummarizeStock(items)
	if sum.TotalAvailable != 5 {
		t.Fatalf("expected 5, got %v", sum.TotalAvailable)
	}
}

func TestSummarizeReordersTopFiveStableOrder(t *testing.T) {
	levels := []string{"10", "30", "30", "5", "40", "20"}
	records := make([]entity.ReorderRecord, 0, len(levels))
	for i, lv := range levels {
		records = append(records, entity.ReorderRecord{
			ProductSKU:   string(rune('A' + i)),
			ReorderLevel: lv,
		})
	}

	sum := SummarizeReorders(records)
	if sum.TotalReorderLevel != 135 {
		t.Fatalf("expected total 135, got %v", sum.TotalReorderLevel)
	}
	if len(sum.TopItems) != 5 {
		t.Fatalf("expected 5 top items, got %d", len(sum.TopItems))
	}

	wantLevels := []float64{40, 30, 30, 20, 10}
	// 并列的两个 30 必须保持原始顺序：B 在 C 之前
	wantSKUs := []string{"E", "B", "C", "F", "A"}
	for i, item := range sum.TopItems {
		if item.ReorderLevel != wantLevels[i] {
			t.Fatalf("position %d: expected level %v, got %v", i, wantLevels[i], item.ReorderLevel)
		}
		if item.ProductSKU != wantSKUs[i] {
			t.Fatalf("position %d: expected SKU %s, got %s", i, wantSKUs[i], item.ProductSKU)
		}
	}
}

func TestSummarizeReordersFewerThanFive(t *testing.T) {
	records := []entity.ReorderRecord{
		{ProductSKU: "A", ReorderLevel: "3"},
		{ProductSKU: "B", ReorderLevel: "bad"},
	}

	sum := SummarizeReorders(records)
	if sum.TotalReorderLevel != 3 {
		t.Fatalf("expected total 3, got %v", sum.TotalReorderLevel)
	}
	if len(sum.TopItems) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sum.TopItems))
	}
	if sum.TopItems[1].ReorderLevel != 0 {
		t.Fatalf("non-numeric level should count as 0, got %v", sum.TopItems[1].ReorderLevel)
	}
}

func TestLeadTimeProgressMidWindow(t *testing.T) {
	lastOrder := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	leadTime := lastOrder.Add(10 * time.Hour)
	now := lastOrder.Add(5 * time.Hour)

	progress, delayed := LeadTimeProgress(lastOrder, leadTime, now)
	if progress != 50 {
		t.Fatalf("expected progress 50, got %v", progress)
	}
	if delayed {
		t.Fatal("should not be delayed before lead time")
	}
}

func TestLeadTimeProgressOverdue(t *testing.T) {
	lastOrder := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	leadTime := lastOrder.Add(10 * time.Hour)
	now := lastOrder.Add(12 * time.Hour)

	progress, delayed := LeadTimeProgress(lastOrder, leadTime, now)
	if progress != 100 {
		t.Fatalf("expected progress capped at 100, got %v", progress)
	}
	if !delayed {
		t.Fatal("should be delayed past lead time")
	}
	if label := LeadTimeLabel(leadTime, now); label != "2 hours overdue" {
		t.Fatalf("expected \"2 hours overdue\", got %q", label)
	}
}

func TestLeadTimeProgressDegenerateWindow(t *testing.T) {
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	// 目标时间等于下单时间
	progress, _ := LeadTimeProgress(at, at, at.Add(time.Hour))
	if progress != 100 {
		t.Fatalf("zero window: expected 100, got %v", progress)
	}

	// 目标时间早于下单时间
	progress, _ = LeadTimeProgress(at, at.Add(-time.Hour), at)
	if progress != 100 {
		t.Fatalf("negative window: expected 100, got %v", progress)
	}
}

func TestLeadTimeLabelRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	leadTime := now.Add(3 * time.Hour)

	if label := LeadTimeLabel(leadTime, now); label != "3 hours left" {
		t.Fatalf("expected \"3 hours left\", got %q", label)
	}
}

func TestLeadTimeStatusesSkipsUnparseable(t *testing.T) {
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	records := []entity.ReorderRecord{
		{ReferenceNumber: "REORDER-ID-A", LastOrderDate: "2026-03-01", LeadTime: "2026-03-03"},
		{ReferenceNumber: "REORDER-ID-B", LastOrderDate: "soon", LeadTime: "2026-03-03"},
		{ReferenceNumber: "REORDER-ID-C", LastOrderDate: "2026-03-01T08:00", LeadTime: ""},
	}

	statuses := LeadTimeStatuses(records, now)
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status row, got %d", len(statuses))
	}
	if statuses[0].ReferenceNumber != "REORDER-ID-A" {
		t.Fatalf("unexpected record: %+v", statuses[0])
	}
	if statuses[0].Progress != 50 {
		t.Fatalf("expected progress 50, got %v", statuses[0].Progress)
	}
	if statuses[0].IsDelayed {
		t.Fatal("should not be delayed")
	}
}

func TestParseNumberDefensive(t *testing.T) {
	cases := map[string]float64{
		"12":    12,
		"12.75": 12.75,
		"":      0,
		"n/a":   0,
		"NaN":   0,
		"Inf":   0,
		"-3":    -3,
	}
	for in, want := range cases {
		if got := parseNumber(in); got != want {
			t.Fatalf("parseNumber(%q) = %v, want %v", in, got, want)
		}
	}
}
