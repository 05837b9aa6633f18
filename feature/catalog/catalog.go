package catalog

import (
	"relcast/core/relation"
)

// Entity type tags used by the catalog schema.
const (
	OwnerAlbum   = "album"
	RelatedTrack = "track"
	RelatedCover = "cover"
)

// Relation field names on an album.
const (
	FieldTracks = "tracks"
	FieldCover  = "cover"
)

// Schema builds the relation schema for the catalog domain: an album owns
// an ordered collection of tracks and a single cover.
func Schema() *relation.SchemaMap {
	s := relation.NewSchemaMap()
	s.Register(&relation.Descriptor{
		Field:       FieldTracks,
		Cardinality: relation.Many,
		Owner:       OwnerAlbum,
		Related:     RelatedTrack,
		OnCast:      TrackChangeset,
	})
	s.Register(&relation.Descriptor{
		Field:       FieldCover,
		Cardinality: relation.One,
		Owner:       OwnerAlbum,
		Related:     RelatedCover,
		OnCast:      CoverChangeset,
	})
	return s
}
