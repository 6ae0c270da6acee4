package controllers

import (
	"net/http"
	"strconv"
	"time"

	"dailyreview/config"
	"dailyreview/models"
	"dailyreview/services"

	"github.com/gin-gonic/gin"
)

type FormdataController struct {
	service *services.FormdataService
}

func NewFormdataController(service *services.FormdataService) *FormdataController {
	return &FormdataController{service: service}
}

// Create 提交一条每日复盘。
// 任何失败都只返回通用错误，原始错误只写日志。
func (fc *FormdataController) Create(c *gin.Context) {
	var req models.FormdataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		config.Logger.Errorw("解析复盘请求失败", "error", err, "requestID", c.GetString("requestID"))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.GenericErrorMessage})
		return
	}

	formdata, err := fc.service.Create(c.Request.Context(), &req)
	if err != nil {
		config.Logger.Errorw("保存复盘失败", "error", err, "requestID", c.GetString("requestID"))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.GenericErrorMessage})
		return
	}

	c.JSON(http.StatusOK, formdata)
}

// List 内部接口，按创建时间倒序返回 since 之后的记录，since 缺省为 Unix 纪元
func (fc *FormdataController) List(c *gin.Context) {
	var req models.ListFormdataRequest

	if sinceStr := c.Query("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid since"})
			return
		}
		req.Since = since
	} else {
		req.Since = time.Unix(0, 0).UTC()
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		req.Limit = limit
	}

	rows, err := fc.service.List(c.Request.Context(), req)
	if err != nil {
		config.Logger.Errorw("查询复盘失败", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.GenericErrorMessage})
		return
	}
	if rows == nil {
		rows = []models.Formdata{}
	}

	c.JSON(http.StatusOK, models.ListFormdataResponse{Formdata: rows})
}
