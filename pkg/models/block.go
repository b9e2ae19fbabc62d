// Package models contains request/response models and business domain types.
package models

// Block is one structured UI block attached to an assistant message.
// The frontend dispatches rendering on Type; Data carries the
// block-specific payload.
type Block struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// Block types understood by the frontend. The set is closed: anything
// outside it renders as plain JSON.
const (
	BlockTypeQuery        = "query"
	BlockTypeCode         = "code"
	BlockTypeTable        = "table"
	BlockTypeChart        = "chart"
	BlockTypeSplunkChart  = "splunk-chart"
	BlockTypeJSONExplorer = "json-explorer"
	BlockTypeTimeline     = "timeline"
	BlockTypeAlert        = "alert"
	BlockTypeFormViewer   = "form-viewer"
	BlockTypeFileTransfer = "file-upload-download"
	BlockTypeChecklist    = "checklist"
	BlockTypeDiagram      = "diagram"
	BlockTypeSearchFilter = "search-filter"
)

var knownBlockTypes = map[string]bool{
	BlockTypeQuery:        true,
	BlockTypeCode:         true,
	BlockTypeTable:        true,
	BlockTypeChart:        true,
	BlockTypeSplunkChart:  true,
	BlockTypeJSONExplorer: true,
	BlockTypeTimeline:     true,
	BlockTypeAlert:        true,
	BlockTypeFormViewer:   true,
	BlockTypeFileTransfer: true,
	BlockTypeChecklist:    true,
	BlockTypeDiagram:      true,
	BlockTypeSearchFilter: true,
}

// IsKnownBlockType reports whether t is part of the closed block taxonomy.
func IsKnownBlockType(t string) bool {
	return knownBlockTypes[t]
}

// SanitizeBlocks drops blocks without a type and guarantees every
// surviving block has a non-nil Data map. The input slice is not modified.
func SanitizeBlocks(blocks []Block) []Block {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Type == "" {
			continue
		}
		if b.Data == nil {
			b.Data = map[string]interface{}{}
		}
		out = append(out, b)
	}
	return out
}
