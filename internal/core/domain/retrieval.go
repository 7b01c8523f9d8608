package domain

// DocumentChunk is one denormalized text block in the search corpus.
// Chunks are derived from the structured records by the corpus builder
// and are read-only at query time.
type DocumentChunk struct {
	Section Section `json:"section"`
	Content string  `json:"content"`
}

type SearchFilter struct {
	Section Section
}

type RetrievedChunk struct {
	Section Section `json:"section"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}
