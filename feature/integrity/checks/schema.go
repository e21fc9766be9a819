package checks

import (
	"fmt"
	"reflect"
	"strings"

	"order-items/core/database"
	"order-items/feature/lineitems/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the item tables with the row model.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the differences found in one table.
type TableReport struct {
	Kind              models.Kind `json:"kind"`
	MissingColumns    []string    `json:"missing_columns"`
	UnexpectedColumns []string    `json:"unexpected_columns"`
	TypeMismatches    []string    `json:"type_mismatches"`
	Status            string      `json:"status"` // "ok", "error"
}

// modelFor returns the struct describing a collection's table.
func modelFor(kind models.Kind) any {
	if kind.HasSupplier() {
		return models.LineItem{}
	}
	return models.InvoiceItem{}
}

// CheckSchema verifies that both item tables carry exactly the expected
// column set, using the gorm tags of the row models as the source of truth.
func CheckSchema(db *gorm.DB, prefix string) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, kind := range models.Kinds {
		table := prefix + kind.TableSuffix()

		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tbl := compareTable(kind, reflect.TypeOf(modelFor(kind)), actual)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}

func compareTable(kind models.Kind, model reflect.Type, actual []database.ColumnInfo) TableReport {
	tbl := TableReport{
		Kind:              kind,
		MissingColumns:    []string{},
		UnexpectedColumns: []string{},
		TypeMismatches:    []string{},
		Status:            "ok",
	}

	actualMap := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		actualMap[col.Field] = col
	}

	expected := make(map[string]struct{}, model.NumField())
	for i := 0; i < model.NumField(); i++ {
		tag := model.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}
		expected[colName] = struct{}{}

		act, ok := actualMap[colName]
		if !ok {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			continue
		}

		if expType := strings.ToLower(parseGormType(tag)); expType != "" && !typeMatches(expType, act.Type) {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, act.Type))
		}
	}

	// Anything else (e.g. supplier_id on the invoice table) breaks the bit-exact column set.
	for _, col := range actual {
		if _, ok := expected[col.Field]; !ok {
			tbl.UnexpectedColumns = append(tbl.UnexpectedColumns, col.Field)
		}
	}

	if len(tbl.MissingColumns)+len(tbl.UnexpectedColumns)+len(tbl.TypeMismatches) > 0 {
		tbl.Status = "error"
	}
	return tbl
}

// typeMatches compares loosely: MySQL reports "decimal(20,2)", postgres "numeric",
// "character varying" or "text", and size suffixes differ between installations.
func typeMatches(expected, actual string) bool {
	if strings.Contains(actual, expected) {
		return true
	}
	base := func(t string) string {
		if i := strings.IndexByte(t, '('); i >= 0 {
			t = t[:i]
		}
		switch t = strings.TrimSpace(t); t {
		case "numeric":
			return "decimal"
		case "character varying":
			return "varchar"
		}
		return t
	}
	return base(expected) == base(actual)
}

func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
