package entities

// ManualBatchID tags records entered by hand instead of through an import.
const ManualBatchID = "manual"

// BatchDisplayName is the label shown for a batch in upload lists.
func BatchDisplayName(batchID string) string {
	if batchID == ManualBatchID {
		return "Manually Added"
	}
	return "Upload " + batchID
}
