package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for story
// documents.
//
// The mapping is designed with these priorities:
//  1. Fast full-text search on title and body with English stemming
//  2. Exact keyword matching for tag and visibility filters
//  3. Numeric timestamps for sorting by recency
//  4. Term vectors on title and location for highlighting
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	// Use English analyzer as default for text fields
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields (full-text searchable) ---

	// Title - primary search target, boosted at query time
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = en.AnalyzerName
	titleFieldMapping.Store = true
	titleFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("title", titleFieldMapping)

	// Body - searchable but not stored (can be long)
	bodyFieldMapping := bleve.NewTextFieldMapping()
	bodyFieldMapping.Analyzer = en.AnalyzerName
	bodyFieldMapping.Store = false
	bodyFieldMapping.IncludeTermVectors = true // For snippet highlighting
	docMapping.AddFieldMappingsAt("body", bodyFieldMapping)

	// Location - searchable, no stemming (place names)
	locationFieldMapping := bleve.NewTextFieldMapping()
	locationFieldMapping.Analyzer = simple.Name
	locationFieldMapping.Store = true
	locationFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("location", locationFieldMapping)

	// Author - searchable with simple analyzer (names)
	authorFieldMapping := bleve.NewTextFieldMapping()
	authorFieldMapping.Analyzer = simple.Name
	authorFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("author", authorFieldMapping)

	// --- Keyword fields (exact match, facetable) ---

	// ID - stored but not analyzed
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Mood - exact filtering and faceting
	moodFieldMapping := bleve.NewTextFieldMapping()
	moodFieldMapping.Analyzer = keyword.Name
	moodFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("mood", moodFieldMapping)

	// Visibility - exact filtering
	visibilityFieldMapping := bleve.NewTextFieldMapping()
	visibilityFieldMapping.Analyzer = keyword.Name
	visibilityFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("visibility", visibilityFieldMapping)

	// Tags - keyword analyzer keeps compound tags intact
	// (e.g., "road-trip")
	tagsFieldMapping := bleve.NewTextFieldMapping()
	tagsFieldMapping.Analyzer = keyword.Name
	tagsFieldMapping.Store = true
	tagsFieldMapping.IncludeTermVectors = true // For faceting
	docMapping.AddFieldMappingsAt("tags", tagsFieldMapping)

	// --- Numeric fields (sorting by recency) ---

	createdAtFieldMapping := bleve.NewNumericFieldMapping()
	createdAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("created_at", createdAtFieldMapping)

	updatedAtFieldMapping := bleve.NewNumericFieldMapping()
	updatedAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("updated_at", updatedAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
