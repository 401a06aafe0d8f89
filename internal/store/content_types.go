package store

// ContentTable maps a wire-level content type to the table holding its
// counters. Dispatch is table-driven so unknown types are rejected before
// any write happens.
type ContentTable struct {
	Table string
	IDCol string
}

var contentTables = map[string]ContentTable{
	"thesis":      {Table: "theses", IDCol: "thesis_id"},
	"publication": {Table: "publications", IDCol: "publication_id"},
	"dataset":     {Table: "datasets", IDCol: "dataset_id"},
	"model":       {Table: "models", IDCol: "model_id"},
}

func LookupContentTable(contentType string) (ContentTable, bool) {
	table, ok := contentTables[contentType]
	return table, ok
}
