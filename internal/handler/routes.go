package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, analysisHandler *AnalysisHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.SetBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Analysis routes
	analysis := api.Group("/analysis")
	analysis.GET("/monthly-expenses", analysisHandler.GetMonthlyExpenses)
	analysis.GET("/category-distribution", analysisHandler.GetCategoryDistribution)
	analysis.GET("/budget-vs-actual", analysisHandler.GetBudgetVsActual)
}
