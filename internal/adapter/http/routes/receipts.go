package routes

import (
	"pgw_comprovantes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReceipts = "/receipts"
)

func addReceiptRoutes(rg *gin.RouterGroup, receiptHandler *handlers.ReceiptHandler) {
	receipts := rg.Group(PathReceipts)
	{
		receipts.POST("", receiptHandler.GenerateReceipt)
	}
}
