package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/bitfantasy/nimo-wms/internal/wms/service"
	"github.com/gin-gonic/gin"
)

// ReceivingHandler 收货单接口
type ReceivingHandler struct {
	svc *service.ReceivingService
}

func NewReceivingHandler(svc *service.ReceivingService) *ReceivingHandler {
	return &ReceivingHandler{svc: svc}
}

func (h *ReceivingHandler) CreateData(c *gin.Context) {
	var req service.ReceivingFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": rec})
}

// EditData 整单替换，id 在请求体里，沿用上游前端的提交方式
func (h *ReceivingHandler) EditData(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
		service.ReceivingFields
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), req.ID, req.ReceivingFields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "收货单不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": rec})
}

// DeleteData 删除不存在的单据同样返回成功
func (h *ReceivingHandler) DeleteData(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func (h *ReceivingHandler) FetchData(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.ReceivingListParams{
		Status:    c.Query("status"),
		Location:  c.Query("location"),
		Keyword:   c.Query("keyword"),
		DateStart: c.Query("date_start"),
		DateEnd:   c.Query("date_end"),
		Page:      page,
		Size:      size,
	}
	items, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": items, "total": total, "page": page, "size": size}})
}

// UpdateStatus 质检决定：id 和 ReceivedStatus 缺一不可
func (h *ReceivingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		ID             string `json:"id" binding:"required"`
		ReceivedStatus string `json:"ReceivedStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), req.ID, req.ReceivedStatus); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "收货单不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// PostInventoryData 过账：Approved 的收货单转库存记录
func (h *ReceivingHandler) PostInventoryData(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	inv, err := h.svc.PostToInventory(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "收货单不存在"})
		case errors.Is(err, service.ErrStatusNotPostable):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": inv})
}

// FetchPO 收货表单按PO号带出采购单；不带PO号时返回全部PO号
func (h *ReceivingHandler) FetchPO(c *gin.Context) {
	poNumber := c.Query("PONumber")
	if poNumber == "" {
		numbers, err := h.svc.ListPONumbers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": numbers})
		return
	}
	po, err := h.svc.LookupPO(c.Request.Context(), poNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "采购单不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": po})
}

// ExportData 导出收货台账 Excel，支持与列表一致的过滤条件
func (h *ReceivingHandler) ExportData(c *gin.Context) {
	params := repository.ReceivingListParams{
		Status:    c.Query("status"),
		Location:  c.Query("location"),
		Keyword:   c.Query("keyword"),
		DateStart: c.Query("date_start"),
		DateEnd:   c.Query("date_end"),
	}
	f, err := h.svc.Export(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	filename := fmt.Sprintf("Received_Report_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}
