package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"grocery-api/constants"
)

// paginationParams skip/limitクエリパラメータを解析する（デフォルト 0/100）
func paginationParams(ctx *gin.Context) (int, int, error) {
	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", strconv.Itoa(constants.DefaultSkip)))
	if err != nil {
		return 0, 0, err
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(constants.DefaultLimit)))
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}
