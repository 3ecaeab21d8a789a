package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/response"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/utils"
)

// paginationFromQuery reads page and limit query parameters with the
// admin table defaults.
func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return utils.GetPaginationParams(page, limit)
}

func metaFor(total int64, params utils.PaginationParams) utils.PaginationMeta {
	return utils.CalculateMeta(total, params.Page, params.Limit)
}

// respondError sends err, replacing a missing-record error with the
// collection's own not-found message.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, domainerrors.ErrNotFound) {
		response.Error(c, domainerrors.NotFound(notFoundMessage))
		return
	}
	response.Error(c, err)
}
