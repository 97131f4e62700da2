// Package askweb provides a retrieval-augmented question answering service
// over scraped web content. It ingests URLs through a multi-stage fallback
// extraction pipeline, stores clean text durably, builds a semantic vector
// index over the stored documents, and answers natural language questions by
// retrieving relevant passages and conditioning a language model on them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, firecrawl/, ollama/).
package askweb
