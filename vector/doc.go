// Package vector provides small pure functions over embedding vectors:
// truncation, L2 normalization, cosine similarity, and dimension checks.
//
// All functions are allocation-light and side-effect free except Normalize,
// which scales in place.
//
//	v := vector.Truncate(embedding, 256)
//	vector.Normalize(v)
//	sim, err := vector.CosineSimilarity(v, other)
package vector
