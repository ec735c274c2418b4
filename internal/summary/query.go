package summary

// vendorSummaryQuery aggregates the raw tables. Every output column is cast so
// the result types do not depend on what type inference chose for the inputs.
// Volume is read as text and parsed in Go.
const vendorSummaryQuery = `
WITH "FreightSummary" AS (
    SELECT "VendorNumber", SUM("Freight") AS "FreightCost"
    FROM vendor_invoice
    GROUP BY "VendorNumber"
),
"PurchaseSummary" AS (
    SELECT
        p."VendorNumber",
        p."VendorName",
        p."Brand",
        p."Description",
        p."PurchasePrice",
        pp."Price" AS "ActualPrice",
        pp."Volume",
        SUM(p."Quantity") AS "TotalPurchaseQuantity",
        SUM(p."Dollars") AS "TotalPurchaseDollars"
    FROM purchases p
    JOIN purchase_prices pp ON p."Brand" = pp."Brand"
    WHERE p."PurchasePrice" > 0
    GROUP BY p."VendorNumber", p."VendorName", p."Brand", p."Description",
             p."PurchasePrice", pp."Price", pp."Volume"
),
"SalesSummary" AS (
    SELECT
        "VendorNo",
        "Brand",
        SUM("SalesQuantity") AS "TotalSalesQuantity",
        SUM("SalesDollars") AS "TotalSalesDollars",
        SUM("SalesPrice") AS "TotalSalesPrice",
        SUM("ExciseTax") AS "TotalExciseTax"
    FROM sales
    GROUP BY "VendorNo", "Brand"
)
SELECT
    ps."VendorNumber"::bigint                   AS "VendorNumber",
    ps."VendorName"::text                       AS "VendorName",
    ps."Brand"::bigint                          AS "Brand",
    ps."Description"::text                      AS "Description",
    ps."PurchasePrice"::double precision        AS "PurchasePrice",
    ps."ActualPrice"::double precision          AS "ActualPrice",
    ps."Volume"::text                           AS "Volume",
    ps."TotalPurchaseQuantity"::double precision AS "TotalPurchaseQuantity",
    ps."TotalPurchaseDollars"::double precision AS "TotalPurchaseDollars",
    ss."TotalSalesQuantity"::double precision   AS "TotalSalesQuantity",
    ss."TotalSalesDollars"::double precision    AS "TotalSalesDollars",
    ss."TotalSalesPrice"::double precision      AS "TotalSalesPrice",
    ss."TotalExciseTax"::double precision       AS "TotalExciseTax",
    fs."FreightCost"::double precision          AS "FreightCost"
FROM "PurchaseSummary" ps
LEFT JOIN "SalesSummary" ss
    ON ps."VendorNumber" = ss."VendorNo" AND ps."Brand" = ss."Brand"
LEFT JOIN "FreightSummary" fs
    ON ps."VendorNumber" = fs."VendorNumber"
ORDER BY ps."TotalPurchaseDollars" DESC NULLS LAST`

// selectSummaryQuery reads back the stored summary, largest purchases first.
const selectSummaryQuery = `
SELECT "VendorNumber", "VendorName", "Brand", "Description",
       "PurchasePrice", "ActualPrice", "Volume",
       "TotalPurchaseQuantity", "TotalPurchaseDollars",
       "TotalSalesQuantity", "TotalSalesDollars", "TotalSalesPrice", "TotalExciseTax",
       "FreightCost", "GrossProfit", "ProfitMargin", "StockTurnover", "SalesToPurchaseRatio"
FROM vendor_sales_summary
ORDER BY "TotalPurchaseDollars" DESC NULLS LAST`
