package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/redis/go-redis/v9"
)

const (
	dashboardCacheKey = "wms:dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardService 看板服务：库存状态聚合、补货汇总、交期进度
type DashboardService struct {
	inventoryRepo *repository.InventoryRepository
	reorderRepo   *repository.ReorderRepository
	rdb           *redis.Client
}

func NewDashboardService(ir *repository.InventoryRepository, rr *repository.ReorderRepository, rdb *redis.Client) *DashboardService {
	return &DashboardService{inventoryRepo: ir, reorderRepo: rr, rdb: rdb}
}

// StockSummary 库存状态分桶汇总
type StockSummary struct {
	TotalAvailable float64 `json:"TotalAvailable"`
	LowStock       float64 `json:"LowStock"`
	OutOfStock     float64 `json:"OutOfStock"`
}

// TopReorderItem 补货级别排行条目
type TopReorderItem struct {
	ProductSKU   string  `json:"ProductSKU"`
	ProductName  string  `json:"ProductName"`
	ReorderLevel float64 `json:"ReorderLevel"`
}

// ReorderSummary 补货汇总
type ReorderSummary struct {
	TotalReorderLevel float64          `json:"TotalReorderLevel"`
	TopItems          []TopReorderItem `json:"TopItems"`
}

// LeadTimeStatus 单条补货记录的交期进度
type LeadTimeStatus struct {
	ReferenceNumber string  `json:"ReferenceNumber"`
	ProductSKU      string  `json:"ProductSKU"`
	ProductName     string  `json:"ProductName"`
	Progress        float64 `json:"Progress"`
	IsDelayed       bool    `json:"IsDelayed"`
	Label           string  `json:"Label"`
}

// Summary 看板汇总载荷
type Summary struct {
	Stock     StockSummary     `json:"Stock"`
	Reorder   ReorderSummary   `json:"Reorder"`
	LeadTimes []LeadTimeStatus `json:"LeadTimes"`
}

// parseNumber 上游把数量/级别都存成文本，解析失败一律按 0 计
func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// SummarizeStock 按商品状态分桶累加数量。
// Available / Low-Stock / No-Stock 之外的状态（如 Draft）不计入任何桶。
func SummarizeStock(items []entity.InventoryRecord) StockSummary {
	var sum StockSummary
	for _, item := range items {
		qty := parseNumber(item.ProductQuantity)
		switch item.ProductStatus {
		case entity.ProductStatusAvailable:
			sum.TotalAvailable += qty
		case entity.ProductStatusLowStock:
			sum.LowStock += qty
		case entity.ProductStatusNoStock:
			sum.OutOfStock += qty
		}
	}
	return sum
}

// SummarizeReorders 补货级别总和 + Top5。
// 排序必须稳定：并列名次保持记录的原始顺序。
func SummarizeReorders(records []entity.ReorderRecord) ReorderSummary {
	sum := ReorderSummary{TopItems: []TopReorderItem{}}

	items := make([]TopReorderItem, 0, len(records))
	for _, rec := range records {
		level := parseNumber(rec.ReorderLevel)
		sum.TotalReorderLevel += level
		items = append(items, TopReorderItem{
			ProductSKU:   rec.ProductSKU,
			ProductName:  rec.ProductName,
			ReorderLevel: level,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ReorderLevel > items[j].ReorderLevel
	})

	if len(items) > 5 {
		items = items[:5]
	}
	sum.TopItems = items
	return sum
}

// LeadTimeProgress 由下单时间和目标到货时间推算进度。
// 窗口非正视为已走完（避免除零和负进度）。
func LeadTimeProgress(lastOrder, leadTime, now time.Time) (progress float64, delayed bool) {
	window := leadTime.Sub(lastOrder).Hours()
	elapsed := now.Sub(lastOrder).Hours()

	if window <= 0 {
		progress = 100
	} else {
		progress = math.Min(elapsed/window*100, 100)
	}

	return progress, now.After(leadTime)
}

// LeadTimeLabel 剩余/逾期小时数的展示文案
func LeadTimeLabel(leadTime, now time.Time) string {
	hoursDiff := leadTime.Sub(now).Hours()
	if now.After(leadTime) {
		return fmt.Sprintf("%d hours overdue", int(math.Abs(math.Round(hoursDiff))))
	}
	return fmt.Sprintf("%d hours left", int(math.Round(hoursDiff)))
}

// parseWhen 补货单的时间字段是文本，支持日期或日期时间两种写法
func parseWhen(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LeadTimeStatuses 逐条推导交期进度；时间字段无法解析的记录跳过
func LeadTimeStatuses(records []entity.ReorderRecord, now time.Time) []LeadTimeStatus {
	statuses := make([]LeadTimeStatus, 0, len(records))
	for _, rec := range records {
		lastOrder, ok1 := parseWhen(rec.LastOrderDate)
		leadTime, ok2 := parseWhen(rec.LeadTime)
		if !ok1 || !ok2 {
			continue
		}
		progress, delayed := LeadTimeProgress(lastOrder, leadTime, now)
		statuses = append(statuses, LeadTimeStatus{
			ReferenceNumber: rec.ReferenceNumber,
			ProductSKU:      rec.ProductSKU,
			ProductName:     rec.ProductName,
			Progress:        progress,
			IsDelayed:       delayed,
			Label:           LeadTimeLabel(leadTime, now),
		})
	}
	return statuses
}

// GetSummary 汇总看板数据。全量拉取后在内存聚合，结果短期缓存。
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var summary Summary
			if json.Unmarshal(cached, &summary) == nil {
				return &summary, nil
			}
		}
	}

	inventory, err := s.inventoryRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取库存失败: %w", err)
	}
	reorders, err := s.reorderRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取补货记录失败: %w", err)
	}

	summary := &Summary{
		Stock:     SummarizeStock(inventory),
		Reorder:   SummarizeReorders(reorders),
		LeadTimes: LeadTimeStatuses(reorders, time.Now()),
	}

	if s.rdb != nil {
		if data, err := json.Marshal(summary); err == nil {
			s.rdb.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL)
		}
	}

	return summary, nil
}

// InvalidateCache 库存或补货数据有写入时清缓存
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, dashboardCacheKey)
	}
}
