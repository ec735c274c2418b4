// Package csvtable parses delimited text files into vendorsum.Table values.
//
// The first record is the header. Column names are kept verbatim except that
// blank names become "Unnamed: <index>" and repeated names get a ".1", ".2"
// suffix. Empty cells are NULL. Each column is typed from its non-NULL cells:
// integer if all parse as int64, float if all parse as float64, boolean if all
// are True/False (any case of the first letter), text otherwise. A column with
// no values at all is text.
package csvtable
