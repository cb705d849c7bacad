package models

// SheetData holds the charts found on a single sheet.
type SheetData struct {
	// Charts contains charts detected on the sheet.
	Charts []Chart `json:"charts,omitempty"`
}
