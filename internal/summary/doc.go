// Package summary builds the vendor_sales_summary table from the raw tables.
//
// One query aggregates purchases per (vendor, brand, purchase price), sales
// per (vendor, brand) and freight per vendor, then joins the three. Go code
// fills missing values with zero, trims the vendor name and description, and
// adds four derived columns:
//
//	GrossProfit          = TotalSalesDollars - TotalPurchaseDollars
//	ProfitMargin         = GrossProfit / TotalSalesDollars * 100
//	StockTurnover        = TotalSalesQuantity / TotalPurchaseQuantity
//	SalesToPurchaseRatio = TotalSalesDollars / TotalPurchaseDollars
//
// Division by zero is not an error: the ratios become +Inf, -Inf or NaN and
// are stored as such.
package summary
