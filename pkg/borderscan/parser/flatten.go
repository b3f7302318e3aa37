package parser

import "github.com/ukaji3/borderscan-go/pkg/borderscan/models"

// FlattenSimple turns a simple table into one record per data row. Row 1
// holds the headers; every later row is zipped with it positionally and
// pairs with an empty key and an empty value are dropped.
func FlattenSimple(g *Grid) []models.Record {
	if g.Rows() < 1 {
		return nil
	}
	headers := g.Row(1)
	records := make([]models.Record, 0, g.Rows()-1)
	for r := 2; r <= g.Rows(); r++ {
		var rec models.Record
		for c, h := range headers {
			rec.Set(h, g.Value(r, c+1))
		}
		records = append(records, rec.Compact())
	}
	return records
}
