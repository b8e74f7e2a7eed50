package postgres

import "fmt"

// listCitiesSQL keeps catalog order stable by the table's primary key.
const listCitiesSQL = `
SELECT city_ascii, country, COALESCE(iso2, '')
FROM %s
ORDER BY id ASC
`

func listCitiesQuery(table string) string {
	return fmt.Sprintf(listCitiesSQL, table)
}
